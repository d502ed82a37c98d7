package service

import (
	"context"
	"fmt"

	"github.com/tieubaoca/ocr-be/config"
	"github.com/tieubaoca/ocr-be/types"
)

// PromptClean asks the model to consolidate the page into clean, logical
// paragraphs. PromptStrict asks it to preserve the layout as printed.
// Which one a deployment uses is configuration, not behavior.
const (
	PromptClean = "Extract all text from this single page image, focusing on clarity and document structure. " +
		"Do not include any formatting tags like <u>, <s>, or any HTML/Markdown. " +
		"Clean the extracted text by intelligently inserting appropriate line breaks, " +
		"bullet points (for numbered lists), and proper spacing to make the content " +
		"look like a well-formatted, clean document. " +
		"Ensure headings are separate from paragraphs."

	PromptStrict = "Extract all text from this single page image exactly as it appears, " +
		"preserving the original line breaks, column order, spacing and reading order. " +
		"Do not include any formatting tags like <u>, <s>, or any HTML/Markdown. " +
		"Do not reflow, merge or reorder lines."
)

// OCRBackend is the one capability the pipeline needs from a model
// provider: given an instruction and a page image, return the extracted
// text. Any transport, quota or auth failure surfaces as *types.BackendError.
type OCRBackend interface {
	Extract(ctx context.Context, prompt string, img types.PageImage) (string, error)
}

// PromptForStyle maps the configured prompt_style to its instruction string.
func PromptForStyle(style string) string {
	if style == "strict" {
		return PromptStrict
	}
	return PromptClean
}

// NewOCRBackend builds the backend selected by cfg.Provider. A missing
// credential does not stop construction; callers check the key before
// processing so a misconfigured server still comes up and reports it.
func NewOCRBackend(ctx context.Context, cfg *config.Config) (OCRBackend, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIOCRService(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.Model), nil
	case config.ProviderGemini:
		return NewGeminiOCRService(ctx, cfg.GeminiAPIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}
