package types

import "strings"

// FileKind is the declared kind of an uploaded document.
type FileKind string

const (
	KindPDF  FileKind = "pdf"
	KindJPEG FileKind = "jpeg"
	KindPNG  FileKind = "png"
)

// KindFromExt maps a file extension (with or without the leading dot)
// to a supported kind. ok is false for anything outside pdf/jpg/jpeg/png.
func KindFromExt(ext string) (FileKind, bool) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "pdf":
		return KindPDF, true
	case "jpg", "jpeg":
		return KindJPEG, true
	case "png":
		return KindPNG, true
	default:
		return "", false
	}
}

// InputDocument is an uploaded file owned by a single pipeline invocation.
// Path points at the stored copy in the upload directory; the pipeline
// deletes it when the invocation ends, on success and on failure alike.
type InputDocument struct {
	Name string // original filename as uploaded
	Path string // stored copy on disk
	Kind FileKind
	Data []byte
}

// PageImage is one rendered page, held in memory for the duration of a
// single OCR call.
type PageImage struct {
	Number int    // 1-based page number
	Format string // "png" or "jpeg"
	Data   []byte
}

// PageResult pairs a page number with the text the OCR backend returned
// for it. Text may be the EmptyPageText sentinel, never ""
// once the pipeline has processed the page.
type PageResult struct {
	Number int
	Text   string
}

// EmptyPageText is substituted for pages whose OCR call returned nothing,
// so the assembled document always has one section per input page.
const EmptyPageText = "OCR failed to return text for this page"
