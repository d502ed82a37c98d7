package service

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tieubaoca/ocr-be/types"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := 0; i < 8; i++ {
		img.Set(i, i, color.Black)
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func jpegBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestSplitSingleImagePassthrough(t *testing.T) {
	s := NewPageService(300)
	data := pngBytes(t)

	pages, err := s.Split(&types.InputDocument{Name: "scan.png", Kind: types.KindPNG, Data: data})
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, 1, pages[0].Number)
	assert.Equal(t, "png", pages[0].Format)
	// the input itself, no re-rasterization
	assert.Equal(t, data, pages[0].Data)
}

func TestSplitJPEG(t *testing.T) {
	s := NewPageService(150)

	pages, err := s.Split(&types.InputDocument{Name: "scan.jpg", Kind: types.KindJPEG, Data: jpegBytes(t)})
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "jpeg", pages[0].Format)
}

func TestSplitUnsupportedKind(t *testing.T) {
	s := NewPageService(300)

	_, err := s.Split(&types.InputDocument{Name: "anim.gif", Kind: "gif", Data: pngBytes(t)})
	assert.ErrorIs(t, err, types.ErrUnsupportedFormat)
}

func TestSplitContentMismatch(t *testing.T) {
	s := NewPageService(300)

	// PNG bytes declared as PDF must be rejected before rendering
	_, err := s.Split(&types.InputDocument{Name: "fake.pdf", Kind: types.KindPDF, Data: pngBytes(t)})
	assert.ErrorIs(t, err, types.ErrUnsupportedFormat)

	// and arbitrary junk declared as an image as well
	_, err = s.Split(&types.InputDocument{Name: "junk.png", Kind: types.KindPNG, Data: []byte("not an image at all")})
	assert.ErrorIs(t, err, types.ErrUnsupportedFormat)
}
