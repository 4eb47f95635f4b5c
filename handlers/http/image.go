package httpHandler

import (
	"net/http"

	"blog-server/media"

	"github.com/gin-gonic/gin"
)

type ImageHandler struct {
	media *media.Store
}

func NewImageHandler(mediaStore *media.Store) *ImageHandler {
	return &ImageHandler{media: mediaStore}
}

// GetImage handles GET /images/:filename and returns the raw file bytes.
func (h *ImageHandler) GetImage(c *gin.Context) {
	filename := c.Param("filename")

	if !h.media.Exists(filename) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Image not found"})
		return
	}

	c.File(h.media.Path(filename))
}
