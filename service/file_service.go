package service

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/tieubaoca/ocr-be/types"
	"github.com/tieubaoca/ocr-be/utils"
)

// FileService stores uploaded documents in the upload directory for the
// lifetime of one pipeline invocation.
type FileService struct {
	uploadDir string
}

func NewFileService(uploadDir string) *FileService {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		panic(err)
	}
	return &FileService{
		uploadDir: uploadDir,
	}
}

// Save writes the upload to disk under a collision-resistant name and
// returns the InputDocument owned by the invocation. Uploads with an
// unsupported extension are rejected here, before anything is stored.
func (s *FileService) Save(src io.Reader, filename string) (*types.InputDocument, error) {
	kind, ok := types.KindFromExt(filepath.Ext(filename))
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedFormat, filepath.Ext(filename))
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	// uuid prefix so two concurrent uploads of the same file never collide
	storedName := uuid.NewString() + "_" + utils.SanitizeFileName(filename)
	path := filepath.Join(s.uploadDir, storedName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	return &types.InputDocument{
		Name: filename,
		Path: path,
		Kind: kind,
		Data: data,
	}, nil
}

// Remove deletes the stored copy. It is idempotent: a missing file is not
// an error, and any other deletion failure is logged, never propagated.
func (s *FileService) Remove(doc *types.InputDocument) {
	if doc == nil || doc.Path == "" {
		return
	}
	if err := os.Remove(doc.Path); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not delete uploaded file %s: %v", doc.Path, err)
	}
}
