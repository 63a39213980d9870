// Package store holds the session-scoped in-memory project collection.
// The collection is loaded in bulk and kept for the session lifetime; the
// only local mutation is the bookmark toggle.
package store

import (
	"context"
	"log"
	"sync"

	"github.com/grok-project-10/mvp-dashboard-backend/internal/apperr"
	"github.com/grok-project-10/mvp-dashboard-backend/internal/projects/domain"
	"github.com/grok-project-10/mvp-dashboard-backend/internal/projects/repository"
)

type Store struct {
	repo repository.ProjectRepository

	mu       sync.RWMutex
	projects []domain.Project
	lastErr  error
}

func New(repo repository.ProjectRepository) *Store {
	return &Store{repo: repo}
}

// Load fetches the full collection ordered by updatedAt descending. On a
// fetch failure the store still resolves to an empty, loading-complete
// state: the error is logged and returned for surfacing, but the returned
// slice is always usable.
func (s *Store) Load(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		log.Printf("[store] load failed, degrading to empty collection: %v", err)
		s.mu.Lock()
		s.projects = []domain.Project{}
		s.lastErr = err
		s.mu.Unlock()
		return []domain.Project{}, err
	}

	s.mu.Lock()
	s.projects = projects
	s.lastErr = nil
	s.mu.Unlock()
	return projects, nil
}

// Projects returns the current in-memory snapshot.
func (s *Store) Projects() []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// LastErr reports the error recorded by the most recent Load, if any.
func (s *Store) LastErr() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// ToggleBookmark flips the bookmark flag for id: the flip is persisted
// first and the in-memory copy updated only on success, so a failed write
// leaves local state untouched. Returns the new bookmark value.
func (s *Store) ToggleBookmark(ctx context.Context, id string) (bool, error) {
	s.mu.RLock()
	idx := -1
	for i := range s.projects {
		if s.projects[i].ID == id {
			idx = i
			break
		}
	}
	var next bool
	if idx >= 0 {
		next = !s.projects[idx].Bookmarked
	}
	s.mu.RUnlock()

	if idx < 0 {
		return false, apperr.New(apperr.CodeNotFound, "project not found")
	}

	if err := s.repo.SetBookmark(ctx, id, next); err != nil {
		log.Printf("[store] bookmark toggle failed for %s: %v", id, err)
		return !next, err
	}

	s.mu.Lock()
	// Re-locate in case the slice was reloaded between the two locks.
	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects[i].Bookmarked = next
			break
		}
	}
	s.mu.Unlock()
	return next, nil
}
