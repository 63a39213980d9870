package service

import (
	"context"
	"strings"

	"github.com/grok-project-10/mvp-dashboard-backend/internal/apperr"
	"github.com/grok-project-10/mvp-dashboard-backend/internal/projects/domain"
	"github.com/grok-project-10/mvp-dashboard-backend/internal/projects/repository"
)

// ProjectService handles project business rules: ownership checks,
// field defaults, and techStack/docs de-duplication at the edit boundary.
type ProjectService struct {
	repo repository.ProjectRepository
}

func NewProjectService(repo repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// Input is the caller-supplied project payload for create and update.
type Input struct {
	Category  string
	Title     string
	SubTitle  string
	URL       string
	TechStack []string
	Docs      []string
	Note      string
	Thumbnail string
	Status    string
	Version   string
}

func (in Input) fields(createdBy string) domain.Fields {
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = domain.DefaultStatus
	}
	version := strings.TrimSpace(in.Version)
	if version == "" {
		version = domain.DefaultVersion
	}
	return domain.Fields{
		Category:  strings.TrimSpace(in.Category),
		Title:     strings.TrimSpace(in.Title),
		SubTitle:  strings.TrimSpace(in.SubTitle),
		URL:       strings.TrimSpace(in.URL),
		TechStack: domain.Dedup(in.TechStack),
		Docs:      domain.Dedup(in.Docs),
		Note:      in.Note,
		Thumbnail: in.Thumbnail,
		Status:    status,
		Version:   version,
		CreatedBy: createdBy,
	}
}

// Create stores a new project owned by uid.
func (s *ProjectService) Create(ctx context.Context, uid string, in Input) (string, error) {
	if uid == "" {
		return "", apperr.New(apperr.CodeAuthorization, "sign-in required")
	}
	if strings.TrimSpace(in.Title) == "" {
		return "", apperr.New(apperr.CodeInvalid, "title is required")
	}
	return s.repo.Create(ctx, in.fields(uid))
}

// Get fetches a single project.
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.Get(ctx, id)
}

// List fetches the whole collection.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.repo.List(ctx)
}

// Update rewrites the editable fields after an ownership check. The check
// is a UX guard mirrored by Firestore rules; denial issues no write.
func (s *ProjectService) Update(ctx context.Context, uid, id string, in Input) error {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if !p.OwnedBy(uid) {
		return apperr.New(apperr.CodeAuthorization, "not allowed to edit this project")
	}

	f := in.fields(p.CreatedBy)
	return s.repo.Update(ctx, id, f)
}

// Clone copies a project's descriptive fields into a fresh record owned by
// uid: new title suffix, fresh server timestamps, bookmark cleared.
func (s *ProjectService) Clone(ctx context.Context, uid, id string) (string, error) {
	if uid == "" {
		return "", apperr.New(apperr.CodeAuthorization, "sign-in required")
	}

	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return "", err
	}

	return s.repo.Create(ctx, domain.Fields{
		Category:  p.Category,
		Title:     p.Title + domain.CloneTitleSuffix,
		SubTitle:  p.SubTitle,
		URL:       p.URL,
		TechStack: domain.Dedup(p.TechStack),
		Docs:      domain.Dedup(p.Docs),
		Note:      p.Note,
		Thumbnail: p.Thumbnail,
		Status:    p.Status,
		Version:   p.Version,
		CreatedBy: uid,
	})
}

// Delete removes a project after an ownership check; denial issues no
// write.
func (s *ProjectService) Delete(ctx context.Context, uid, id string) error {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if !p.OwnedBy(uid) {
		return apperr.New(apperr.CodeAuthorization, "not allowed to delete this project")
	}
	return s.repo.Delete(ctx, id)
}
