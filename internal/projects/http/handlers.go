package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	httpapi "github.com/grok-project-10/mvp-dashboard-backend/internal/api/http"
	"github.com/grok-project-10/mvp-dashboard-backend/internal/apperr"
	"github.com/grok-project-10/mvp-dashboard-backend/internal/auth"
	"github.com/grok-project-10/mvp-dashboard-backend/internal/projects/filter"
	"github.com/grok-project-10/mvp-dashboard-backend/internal/projects/service"
)

// list reloads the collection and applies the filter pipeline server-side.
// A fetch failure degrades to an empty, loading-complete response instead
// of an error screen.
func (h *Handler) list(c *gin.Context) {
	projects, err := h.store.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": true, "projects": projects, "degraded": true})
		return
	}

	opts := filter.Options{
		Query:          c.Query("q"),
		Category:       c.Query("category"),
		Tech:           c.Query("tech"),
		BookmarkedOnly: c.Query("bookmarked") == "true",
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": filter.Visible(projects, opts)})
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) create(c *gin.Context) {
	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	uid := auth.UserFirebaseUID(c)
	id, err := h.svc.Create(c.Request.Context(), uid, toInput(req))
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": id})
}

func (h *Handler) update(c *gin.Context) {
	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	uid := auth.UserFirebaseUID(c)
	if err := h.svc.Update(c.Request.Context(), uid, c.Param("id"), toInput(req)); err != nil {
		httpapi.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) clone(c *gin.Context) {
	uid := auth.UserFirebaseUID(c)
	id, err := h.svc.Clone(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": id})
}

func (h *Handler) delete(c *gin.Context) {
	uid := auth.UserFirebaseUID(c)
	if err := h.svc.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// bookmark toggles the bookmark flag through the session store so the
// in-memory copy only changes once persistence confirms.
func (h *Handler) bookmark(c *gin.Context) {
	id := c.Param("id")

	bookmarked, err := h.store.ToggleBookmark(c.Request.Context(), id)
	if err != nil {
		if apperr.IsNotFound(err) {
			// The store may not have seen the record yet; reload once.
			if _, lerr := h.store.Load(c.Request.Context()); lerr == nil {
				bookmarked, err = h.store.ToggleBookmark(c.Request.Context(), id)
			}
		}
		if err != nil {
			httpapi.Error(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "bookmarked": bookmarked})
}

// filtersMeta returns the distinct category and tech values offered to the
// filter dropdowns.
func (h *Handler) filtersMeta(c *gin.Context) {
	projects, err := h.store.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": true, "categories": []string{}, "techStacks": []string{}, "degraded": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":         true,
		"categories": filter.Categories(projects),
		"techStacks": filter.TechStacks(projects),
	})
}

func toInput(req projectReq) service.Input {
	return service.Input{
		Category:  req.Category,
		Title:     req.Title,
		SubTitle:  req.SubTitle,
		URL:       req.URL,
		TechStack: req.TechStack,
		Docs:      req.Docs,
		Note:      req.Note,
		Thumbnail: req.Thumbnail,
		Status:    req.Status,
		Version:   req.Version,
	}
}
