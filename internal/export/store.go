package export

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/grok-project-10/mvp-dashboard-backend/internal/apperr"
)

const (
	snapshotKeyPrefix = "dash:export:"      // Snapshot payload: dash:export:{snapshot_id}
	userSetKeyPrefix  = "dash:export:user:" // Set of snapshot IDs per user: dash:export:user:{uid}
	defaultTTL        = 72 * time.Hour
)

// Store persists export snapshots in Redis with a TTL.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{client: client, ttl: ttl}
}

func (s *Store) snapshotKey(id string) string { return snapshotKeyPrefix + id }
func (s *Store) userSetKey(uid string) string { return userSetKeyPrefix + uid }

// Save stores the snapshot and indexes it under the generating user. A
// missing ID is assigned here.
func (s *Store) Save(ctx context.Context, uid string, snap *Snapshot) error {
	if snap.ID == "" {
		snap.ID = uuid.New().String()
	}
	snap.GeneratedBy = uid

	data, err := json.Marshal(snap)
	if err != nil {
		return apperr.Wrap(err, apperr.CodeWrite, "marshal snapshot")
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.snapshotKey(snap.ID), data, s.ttl)
	if uid != "" {
		userKey := s.userSetKey(uid)
		pipe.SAdd(ctx, userKey, snap.ID)
		pipe.Expire(ctx, userKey, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.Wrap(err, apperr.CodeWrite, "save snapshot")
	}
	return nil
}

// Get returns a snapshot by ID, or a not_found error once it expired.
func (s *Store) Get(ctx context.Context, id string) (*Snapshot, error) {
	data, err := s.client.Get(ctx, s.snapshotKey(id)).Result()
	if err == redis.Nil {
		return nil, apperr.New(apperr.CodeNotFound, "snapshot not found")
	}
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeFetch, "get snapshot")
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeFetch, fmt.Sprintf("decode snapshot %s", id))
	}
	return &snap, nil
}

// ListIDs returns the snapshot IDs generated by uid that have not expired.
func (s *Store) ListIDs(ctx context.Context, uid string) ([]string, error) {
	ids, err := s.client.SMembers(ctx, s.userSetKey(uid)).Result()
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeFetch, "list snapshots")
	}
	return ids, nil
}
