package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const indexHTML = `<!DOCTYPE html>
<html>
<head>
  <title>Document OCR</title>
</head>
<body>
  <h1>Document OCR</h1>
  <p>Upload a PDF or image (jpg, jpeg, png) to convert it to a DOCX file.</p>
  <form action="/upload" method="post" enctype="multipart/form-data">
    <input type="file" name="file" accept=".pdf,.jpg,.jpeg,.png" required>
    <button type="submit">Convert</button>
  </form>
</body>
</html>
`

// IndexHandler serves the upload form.
type IndexHandler struct{}

func NewIndexHandler() *IndexHandler {
	return &IndexHandler{}
}

func (h *IndexHandler) HandleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}
