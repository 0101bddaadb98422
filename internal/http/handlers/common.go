package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// sendAttachment writes body as a download with the given filename.
func sendAttachment(c *gin.Context, filename, contentType string, body []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, contentType, body)
}
