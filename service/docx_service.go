package service

import (
	"bytes"
	"fmt"

	docx "github.com/fumiama/go-docx"
	"github.com/tieubaoca/ocr-be/types"
)

// DocxService assembles per-page OCR results into a single DOCX document,
// entirely in memory.
type DocxService struct{}

func NewDocxService() *DocxService {
	return &DocxService{}
}

// Assemble builds one section per page: a "--- Page N ---" marker followed
// by the extracted text, with an explicit page break between consecutive
// pages. A single page document gets no break at all.
func (s *DocxService) Assemble(results []types.PageResult) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	for i, res := range results {
		marker := doc.AddParagraph()
		marker.AddText(fmt.Sprintf("--- Page %d ---", res.Number))

		body := doc.AddParagraph()
		body.AddText(res.Text)

		if i < len(results)-1 {
			doc.AddParagraph().AddPageBreaks()
		}
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}

	return buf.Bytes(), nil
}
