package export

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grok-project-10/mvp-dashboard-backend/internal/apperr"
	"github.com/grok-project-10/mvp-dashboard-backend/internal/projects/domain"
)

func setupStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewStore(client, time.Hour), mr
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	st, _ := setupStore(t)
	ctx := context.Background()

	snap := BuildSnapshot([]domain.Project{
		{ID: "a", Title: "Landing Page", Category: "web", Status: "완료",
			CreatedAt: time.Now().Add(-48 * time.Hour), UpdatedAt: time.Now()},
	}, time.Now())

	require.NoError(t, st.Save(ctx, "user-1", snap))
	require.NotEmpty(t, snap.ID, "Save assigns a snapshot ID")

	got, err := st.Get(ctx, snap.ID)
	require.NoError(t, err)
	assert.Equal(t, snap.ID, got.ID)
	assert.Equal(t, "user-1", got.GeneratedBy)
	assert.Equal(t, 1, got.Summary.TotalProjects)
	assert.Len(t, got.Projects, 1)
	assert.Equal(t, "Landing Page", got.Projects[0].Title)
}

func TestGetUnknownSnapshot(t *testing.T) {
	st, _ := setupStore(t)

	_, err := st.Get(context.Background(), "missing")
	assert.True(t, apperr.IsNotFound(err))
}

func TestSnapshotsExpire(t *testing.T) {
	st, mr := setupStore(t)
	ctx := context.Background()

	snap := BuildSnapshot(nil, time.Now())
	require.NoError(t, st.Save(ctx, "user-1", snap))

	mr.FastForward(2 * time.Hour)

	_, err := st.Get(ctx, snap.ID)
	assert.True(t, apperr.IsNotFound(err), "snapshot should be gone after the TTL")
}

func TestListIDsPerUser(t *testing.T) {
	st, _ := setupStore(t)
	ctx := context.Background()

	first := BuildSnapshot(nil, time.Now())
	second := BuildSnapshot(nil, time.Now())
	require.NoError(t, st.Save(ctx, "user-1", first))
	require.NoError(t, st.Save(ctx, "user-1", second))
	other := BuildSnapshot(nil, time.Now())
	require.NoError(t, st.Save(ctx, "user-2", other))

	ids, err := st.ListIDs(ctx, "user-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{first.ID, second.ID}, ids)
}
