package uploads

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/grok-project-10/mvp-dashboard-backend/internal/api/http"
)

// Handler exposes the thumbnail upload endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/thumbnail", h.uploadThumbnail)
}

func (h *Handler) uploadThumbnail(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "file field is required"})
		return
	}
	if fileHeader.Size > MaxThumbnailSize {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "file too large"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "cannot read file"})
		return
	}
	defer f.Close()

	url, err := h.svc.UploadThumbnail(
		c.Request.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		f,
	)
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "url": url})
}
