package http

import (
	"github.com/grok-project-10/mvp-dashboard-backend/internal/projects/service"
	"github.com/grok-project-10/mvp-dashboard-backend/internal/projects/store"
)

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	svc   *service.ProjectService
	store *store.Store
}

func New(svc *service.ProjectService, st *store.Store) *Handler {
	return &Handler{svc: svc, store: st}
}

type projectReq struct {
	Category  string   `json:"category"`
	Title     string   `json:"title"`
	SubTitle  string   `json:"subTitle"`
	URL       string   `json:"url"`
	TechStack []string `json:"techStack"`
	Docs      []string `json:"docs"`
	Note      string   `json:"note"`
	Thumbnail string   `json:"thumbnail"`
	Status    string   `json:"status"`
	Version   string   `json:"version"`
}
