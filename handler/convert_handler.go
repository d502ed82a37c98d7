package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/ocr-be/config"
	"github.com/tieubaoca/ocr-be/service"
	"github.com/tieubaoca/ocr-be/types"
	"github.com/tieubaoca/ocr-be/utils"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// ConvertHandler accepts a document upload, runs it through the OCR
// pipeline and returns the assembled DOCX as an attachment.
type ConvertHandler struct {
	cfg      *config.Config
	files    *service.FileService
	pipeline service.DocumentConverter
}

func NewConvertHandler(cfg *config.Config, files *service.FileService, pipeline service.DocumentConverter) *ConvertHandler {
	return &ConvertHandler{
		cfg:      cfg,
		files:    files,
		pipeline: pipeline,
	}
}

func (h *ConvertHandler) HandleConvert(c *gin.Context) {
	if h.cfg.APIKey() == "" {
		c.String(http.StatusInternalServerError, "Server not configured: %s.", types.ErrMissingAPIKey)
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.String(http.StatusBadRequest, "No file part")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		c.String(http.StatusBadRequest, "No selected file")
		return
	}

	doc, err := h.files.Save(file, header.Filename)
	if err != nil {
		if errors.Is(err, types.ErrUnsupportedFormat) {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Failed to store upload %s: %v", header.Filename, err)
		c.String(http.StatusInternalServerError, "An internal error occurred")
		return
	}

	output, err := h.pipeline.Process(c.Request.Context(), doc)
	if err != nil {
		if errors.Is(err, types.ErrUnsupportedFormat) {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		// keep backend detail out of the client-facing message
		log.Printf("Failed to process %s: %v", header.Filename, err)
		c.String(http.StatusInternalServerError, "An internal error occurred")
		return
	}

	outputName := utils.OutputFileName(header.Filename, h.cfg.OutputSuffix)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", outputName))
	c.Data(http.StatusOK, docxContentType, output)
}
