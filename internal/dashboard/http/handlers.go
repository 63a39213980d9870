// Package http serves the dashboard aggregates: summary statistics, the
// 30-day activity timeline, and export snapshots.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	httpapi "github.com/grok-project-10/mvp-dashboard-backend/internal/api/http"
	"github.com/grok-project-10/mvp-dashboard-backend/internal/auth"
	"github.com/grok-project-10/mvp-dashboard-backend/internal/export"
	"github.com/grok-project-10/mvp-dashboard-backend/internal/projects/stats"
	"github.com/grok-project-10/mvp-dashboard-backend/internal/projects/store"
)

// Handler bundles the dashboard endpoint dependencies. Aggregates are
// always computed over the full collection, not the filtered view.
type Handler struct {
	store   *store.Store
	exports *export.Store
	now     func() time.Time
}

func New(st *store.Store, exports *export.Store) *Handler {
	return &Handler{store: st, exports: exports, now: time.Now}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/stats", h.summary)
	rg.GET("/timeline", h.timeline)
	rg.POST("/export", h.createExport)
	rg.GET("/export", h.listExports)
	rg.GET("/export/:id", h.getExport)
}

func (h *Handler) summary(c *gin.Context) {
	projects, err := h.store.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": true, "stats": stats.Summarize(nil), "degraded": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "stats": stats.Summarize(projects)})
}

func (h *Handler) timeline(c *gin.Context) {
	projects, err := h.store.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": true, "timeline": []stats.DayPoint{}, "degraded": true})
		return
	}

	series := stats.TimeSeries(projects, h.now())
	if series == nil {
		// Empty collection: explicit empty state, not a zeroed series.
		series = []stats.DayPoint{}
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "timeline": series})
}

func (h *Handler) createExport(c *gin.Context) {
	if h.exports == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "export store disabled"})
		return
	}

	projects, err := h.store.Load(c.Request.Context())
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	snap := export.BuildSnapshot(projects, h.now())
	uid := auth.UserFirebaseUID(c)
	if err := h.exports.Save(c.Request.Context(), uid, snap); err != nil {
		httpapi.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "snapshot": snap})
}

func (h *Handler) listExports(c *gin.Context) {
	if h.exports == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "export store disabled"})
		return
	}

	ids, err := h.exports.ListIDs(c.Request.Context(), auth.UserFirebaseUID(c))
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "ids": ids})
}

func (h *Handler) getExport(c *gin.Context) {
	if h.exports == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "export store disabled"})
		return
	}

	snap, err := h.exports.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "snapshot": snap})
}
