package types

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat rejects inputs whose kind is not pdf/jpg/jpeg/png.
// It is always raised before any OCR call is made.
var ErrUnsupportedFormat = errors.New("unsupported file type")

// ErrMissingAPIKey means the configured provider has no credential. This is
// a deployment problem, reported before any processing begins.
var ErrMissingAPIKey = errors.New("API key is missing")

// BackendError wraps any transport, quota or auth failure from the OCR
// backend. It aborts the whole invocation; no partial document is returned.
type BackendError struct {
	Page int
	Err  error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("OCR backend failed on page %d: %v", e.Page, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
