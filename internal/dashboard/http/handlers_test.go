package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grok-project-10/mvp-dashboard-backend/internal/apperr"
	"github.com/grok-project-10/mvp-dashboard-backend/internal/export"
	"github.com/grok-project-10/mvp-dashboard-backend/internal/projects/domain"
	"github.com/grok-project-10/mvp-dashboard-backend/internal/projects/store"
)

type fakeRepo struct {
	projects []domain.Project
	listErr  error
}

func (f *fakeRepo) List(ctx context.Context) ([]domain.Project, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.projects, nil
}

func (f *fakeRepo) Get(ctx context.Context, id string) (*domain.Project, error) {
	return nil, apperr.New(apperr.CodeNotFound, "project not found")
}

func (f *fakeRepo) Create(ctx context.Context, fields domain.Fields) (string, error) {
	return "", nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, fields domain.Fields) error { return nil }

func (f *fakeRepo) SetBookmark(ctx context.Context, id string, bookmarked bool) error { return nil }

func (f *fakeRepo) Delete(ctx context.Context, id string) error { return nil }

func setupRouter(t *testing.T, repo *fakeRepo, withRedis bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var exports *export.Store
	if withRedis {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { client.Close() })
		exports = export.NewStore(client, time.Hour)
	}

	h := New(store.New(repo), exports)
	h.now = func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) }

	r := gin.New()
	h.Register(r.Group("/api/v1/dashboard"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string) (int, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestSummaryEndpoint(t *testing.T) {
	repo := &fakeRepo{projects: []domain.Project{
		{ID: "a", Category: "web", Status: "완료", Bookmarked: true},
		{ID: "b", Category: "api", Status: "진행중"},
	}}
	r := setupRouter(t, repo, false)

	code, body := doJSON(t, r, http.MethodGet, "/api/v1/dashboard/stats")
	require.Equal(t, http.StatusOK, code)

	stats := body["stats"].(map[string]any)
	assert.EqualValues(t, 2, stats["totalProjects"])
	assert.EqualValues(t, 1, stats["completedProjects"])
	assert.EqualValues(t, 1, stats["bookmarkedProjects"])
}

func TestSummaryDegradesOnFetchFailure(t *testing.T) {
	repo := &fakeRepo{listErr: apperr.Wrap(errors.New("permission denied"), apperr.CodeFetch, "list projects")}
	r := setupRouter(t, repo, false)

	code, body := doJSON(t, r, http.MethodGet, "/api/v1/dashboard/stats")
	assert.Equal(t, http.StatusOK, code, "degraded load is not an error screen")
	assert.Equal(t, true, body["degraded"])
}

func TestTimelineEmptyCollection(t *testing.T) {
	r := setupRouter(t, &fakeRepo{}, false)

	code, body := doJSON(t, r, http.MethodGet, "/api/v1/dashboard/timeline")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, body["timeline"], "empty collection yields an empty series")
}

func TestTimelineWindow(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepo{projects: []domain.Project{
		{ID: "a", CreatedAt: now.AddDate(0, 0, -3), UpdatedAt: now.AddDate(0, 0, -3)},
	}}
	r := setupRouter(t, repo, false)

	code, body := doJSON(t, r, http.MethodGet, "/api/v1/dashboard/timeline")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["timeline"], 30)
}

func TestExportRoundTrip(t *testing.T) {
	repo := &fakeRepo{projects: []domain.Project{{ID: "a", Title: "Landing Page"}}}
	r := setupRouter(t, repo, true)

	code, body := doJSON(t, r, http.MethodPost, "/api/v1/dashboard/export")
	require.Equal(t, http.StatusCreated, code)

	snap := body["snapshot"].(map[string]any)
	id := snap["id"].(string)
	require.NotEmpty(t, id)

	code, body = doJSON(t, r, http.MethodGet, "/api/v1/dashboard/export/"+id)
	require.Equal(t, http.StatusOK, code)
	got := body["snapshot"].(map[string]any)
	assert.Equal(t, id, got["id"])
}

func TestExportDisabledWithoutRedis(t *testing.T) {
	r := setupRouter(t, &fakeRepo{}, false)

	code, _ := doJSON(t, r, http.MethodPost, "/api/v1/dashboard/export")
	assert.Equal(t, http.StatusServiceUnavailable, code)
}
