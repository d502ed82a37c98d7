package service

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

// both providers satisfy the backend capability, and the Gemini client
// exposes its lifecycle through io.Closer so callers can release it
var (
	_ OCRBackend = (*OpenAIOCRService)(nil)
	_ OCRBackend = (*GeminiOCRService)(nil)
	_ io.Closer  = (*GeminiOCRService)(nil)
)

func TestPromptForStyle(t *testing.T) {
	assert.Equal(t, PromptStrict, PromptForStyle("strict"))
	assert.Equal(t, PromptClean, PromptForStyle("clean"))
	// anything unrecognized falls back to the clean variant
	assert.Equal(t, PromptClean, PromptForStyle(""))
}
