package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grok-project-10/mvp-dashboard-backend/internal/apperr"
)

// Error writes the standard error envelope for err, mapping the apperr
// code to an HTTP status. Unknown errors become 500s.
func Error(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperr.CodeOf(err) {
	case apperr.CodeInvalid:
		status = http.StatusBadRequest
	case apperr.CodeNotFound:
		status = http.StatusNotFound
	case apperr.CodeAuthorization:
		status = http.StatusForbidden
	case apperr.CodeFetch:
		status = http.StatusBadGateway
	case apperr.CodeWrite, apperr.CodeUpload:
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{"ok": false, "error": err.Error()})
}
