package service

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/gabriel-vasile/mimetype"
	fitz "github.com/gen2brain/go-fitz"
	"github.com/tieubaoca/ocr-be/types"
)

// PageSplitter turns an input document into its ordered page images.
type PageSplitter interface {
	Split(doc *types.InputDocument) ([]types.PageImage, error)
}

// PageService renders PDF pages at a fixed resolution and passes single
// image inputs through untouched.
type PageService struct {
	dpi int
}

// NewPageService creates a page splitter rendering PDFs at the given DPI
// (150 or 300 in practice).
func NewPageService(dpi int) *PageService {
	return &PageService{dpi: dpi}
}

// Split produces one PageImage per logical page, in page order. The
// declared kind must match the actual content; anything else is
// types.ErrUnsupportedFormat, raised before a single OCR call happens.
func (s *PageService) Split(doc *types.InputDocument) ([]types.PageImage, error) {
	if err := s.checkContent(doc); err != nil {
		return nil, err
	}

	switch doc.Kind {
	case types.KindPDF:
		return s.splitPDF(doc.Data)
	case types.KindJPEG, types.KindPNG:
		// Single image inputs are one page already; no re-rasterization.
		return []types.PageImage{{
			Number: 1,
			Format: string(doc.Kind),
			Data:   doc.Data,
		}}, nil
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedFormat, doc.Kind)
	}
}

// checkContent sniffs the actual bytes so a renamed file cannot smuggle an
// unsupported format past the extension check.
func (s *PageService) checkContent(doc *types.InputDocument) error {
	mtype := mimetype.Detect(doc.Data)
	switch doc.Kind {
	case types.KindPDF:
		if !mtype.Is("application/pdf") {
			return fmt.Errorf("%w: file is not a PDF (%s)", types.ErrUnsupportedFormat, mtype.String())
		}
	case types.KindJPEG:
		if !mtype.Is("image/jpeg") {
			return fmt.Errorf("%w: file is not a JPEG (%s)", types.ErrUnsupportedFormat, mtype.String())
		}
	case types.KindPNG:
		if !mtype.Is("image/png") {
			return fmt.Errorf("%w: file is not a PNG (%s)", types.ErrUnsupportedFormat, mtype.String())
		}
	}
	return nil
}

func (s *PageService) splitPDF(data []byte) ([]types.PageImage, error) {
	pdf, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer pdf.Close()

	pages := make([]types.PageImage, 0, pdf.NumPage())
	for i := 0; i < pdf.NumPage(); i++ {
		img, err := pdf.ImageDPI(i, float64(s.dpi))
		if err != nil {
			return nil, fmt.Errorf("failed to render page %d: %w", i+1, err)
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("failed to encode page %d: %w", i+1, err)
		}

		pages = append(pages, types.PageImage{
			Number: i + 1,
			Format: "png",
			Data:   buf.Bytes(),
		})
	}

	return pages, nil
}
