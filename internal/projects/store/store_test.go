package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grok-project-10/mvp-dashboard-backend/internal/apperr"
	"github.com/grok-project-10/mvp-dashboard-backend/internal/projects/domain"
)

// fakeRepo is an in-memory ProjectRepository recording bookmark writes.
type fakeRepo struct {
	projects []domain.Project
	listErr  error
	setErr   error

	bookmarkWrites []string
}

func (f *fakeRepo) List(ctx context.Context) ([]domain.Project, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.Project, len(f.projects))
	copy(out, f.projects)
	return out, nil
}

func (f *fakeRepo) Get(ctx context.Context, id string) (*domain.Project, error) {
	for i := range f.projects {
		if f.projects[i].ID == id {
			p := f.projects[i]
			return &p, nil
		}
	}
	return nil, apperr.New(apperr.CodeNotFound, "project not found")
}

func (f *fakeRepo) Create(ctx context.Context, fields domain.Fields) (string, error) {
	return "new-id", nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, fields domain.Fields) error {
	return nil
}

func (f *fakeRepo) SetBookmark(ctx context.Context, id string, bookmarked bool) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.bookmarkWrites = append(f.bookmarkWrites, id)
	for i := range f.projects {
		if f.projects[i].ID == id {
			f.projects[i].Bookmarked = bookmarked
		}
	}
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error { return nil }

func TestLoad(t *testing.T) {
	repo := &fakeRepo{projects: []domain.Project{{ID: "a"}, {ID: "b"}}}
	s := New(repo)

	projects, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, projects, 2)
	assert.Len(t, s.Projects(), 2)
	assert.NoError(t, s.LastErr())
}

// A fetch failure still resolves to an empty, loading-complete state.
func TestLoadDegradesToEmpty(t *testing.T) {
	fetchErr := apperr.Wrap(errors.New("permission denied"), apperr.CodeFetch, "list projects")
	repo := &fakeRepo{listErr: fetchErr}
	s := New(repo)

	projects, err := s.Load(context.Background())
	assert.Error(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
	assert.Equal(t, fetchErr, s.LastErr())
}

func TestToggleBookmarkRoundTrip(t *testing.T) {
	repo := &fakeRepo{projects: []domain.Project{{ID: "a", Bookmarked: false}}}
	s := New(repo)
	_, err := s.Load(context.Background())
	require.NoError(t, err)

	on, err := s.ToggleBookmark(context.Background(), "a")
	require.NoError(t, err)
	assert.True(t, on)
	assert.True(t, s.Projects()[0].Bookmarked)

	off, err := s.ToggleBookmark(context.Background(), "a")
	require.NoError(t, err)
	assert.False(t, off)
	assert.False(t, s.Projects()[0].Bookmarked, "double toggle restores the original value")

	assert.Equal(t, []string{"a", "a"}, repo.bookmarkWrites, "each toggle issues one persistence write")
}

// The in-memory copy is only mutated after persistence confirms.
func TestToggleBookmarkPersistenceFailure(t *testing.T) {
	repo := &fakeRepo{projects: []domain.Project{{ID: "a", Bookmarked: false}}}
	s := New(repo)
	_, err := s.Load(context.Background())
	require.NoError(t, err)

	repo.setErr = apperr.Wrap(errors.New("unavailable"), apperr.CodeWrite, "set bookmark")

	_, err = s.ToggleBookmark(context.Background(), "a")
	assert.Error(t, err)
	assert.False(t, s.Projects()[0].Bookmarked, "local copy untouched on write failure")
	assert.Empty(t, repo.bookmarkWrites)
}

func TestToggleBookmarkUnknownID(t *testing.T) {
	repo := &fakeRepo{projects: []domain.Project{{ID: "a"}}}
	s := New(repo)
	_, err := s.Load(context.Background())
	require.NoError(t, err)

	_, err = s.ToggleBookmark(context.Background(), "missing")
	assert.True(t, apperr.IsNotFound(err))
}
