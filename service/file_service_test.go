package service

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tieubaoca/ocr-be/types"
)

func TestSaveStoresUpload(t *testing.T) {
	dir := t.TempDir()
	s := NewFileService(dir)

	data := []byte("pretend pdf bytes")
	doc, err := s.Save(bytes.NewReader(data), "My Report.pdf")
	require.NoError(t, err)

	assert.Equal(t, "My Report.pdf", doc.Name)
	assert.Equal(t, types.KindPDF, doc.Kind)
	assert.Equal(t, data, doc.Data)
	assert.Equal(t, dir, filepath.Dir(doc.Path))

	stored, err := os.ReadFile(doc.Path)
	require.NoError(t, err)
	assert.Equal(t, data, stored)

	// stored name is sanitized, the space must not survive
	assert.NotContains(t, filepath.Base(doc.Path), " ")
}

func TestSaveKinds(t *testing.T) {
	s := NewFileService(t.TempDir())

	for name, kind := range map[string]types.FileKind{
		"a.pdf":  types.KindPDF,
		"b.jpg":  types.KindJPEG,
		"c.JPEG": types.KindJPEG,
		"d.png":  types.KindPNG,
	} {
		doc, err := s.Save(strings.NewReader("x"), name)
		require.NoError(t, err, name)
		assert.Equal(t, kind, doc.Kind, name)
	}
}

func TestSaveRejectsUnsupportedExtension(t *testing.T) {
	s := NewFileService(t.TempDir())

	_, err := s.Save(strings.NewReader("x"), "notes.txt")
	assert.ErrorIs(t, err, types.ErrUnsupportedFormat)

	_, err = s.Save(strings.NewReader("x"), "noextension")
	assert.ErrorIs(t, err, types.ErrUnsupportedFormat)
}

func TestSaveConcurrentSameNameNoCollision(t *testing.T) {
	s := NewFileService(t.TempDir())

	a, err := s.Save(strings.NewReader("one"), "same.pdf")
	require.NoError(t, err)
	b, err := s.Save(strings.NewReader("two"), "same.pdf")
	require.NoError(t, err)

	assert.NotEqual(t, a.Path, b.Path)
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := NewFileService(t.TempDir())

	doc, err := s.Save(strings.NewReader("x"), "a.pdf")
	require.NoError(t, err)

	s.Remove(doc)
	_, statErr := os.Stat(doc.Path)
	assert.True(t, os.IsNotExist(statErr))

	// removing again, or removing nothing, must never raise
	s.Remove(doc)
	s.Remove(nil)
	s.Remove(&types.InputDocument{})
}
