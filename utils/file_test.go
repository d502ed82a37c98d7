package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetFileNameWithoutExt(t *testing.T) {
	assert.Equal(t, "report", GetFileNameWithoutExt("report.pdf"))
	assert.Equal(t, "report", GetFileNameWithoutExt("/tmp/uploads/report.pdf"))
	assert.Equal(t, "archive.tar", GetFileNameWithoutExt("archive.tar.gz"))
	assert.Equal(t, "noext", GetFileNameWithoutExt("noext"))
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "My_Report_v2.pdf", SanitizeFileName("My Report v2.pdf"))
	assert.Equal(t, "a-b_c.d", SanitizeFileName("a-b_c.d"))
	assert.Equal(t, "____.png", SanitizeFileName("ảnh!.png"))
}

func TestOutputFileName(t *testing.T) {
	assert.Equal(t, "scan_OCR.docx", OutputFileName("scan.pdf", "_OCR"))
	assert.Equal(t, "scan_ocr.docx", OutputFileName("/tmp/scan.jpeg", "_ocr"))
	assert.Equal(t, "My_Scan_OCR.docx", OutputFileName("My Scan.png", "_OCR"))
}
