package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"go-property-listing/internal/model"
)

// Store keeps at most one live refresh token per (user, session) pair in
// Redis, TTL-bounded. Key layout: "{userID}:{sessionID}" -> refresh token.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// NewSessionID returns a fresh random session id. Session ids are never
// derived from caller-supplied input.
func NewSessionID() string {
	return uuid.NewString()
}

// Put upserts the refresh token for the session and resets its TTL.
// The overwrite is unconditional: concurrent rotations on the same
// session are last-writer-wins, and the losing caller's token fails the
// equality check on its next use.
func (s *Store) Put(ctx context.Context, userID string, sessionID string, refreshToken string, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, key(userID, sessionID), refreshToken, ttl).Err(); err != nil {
		return fmt.Errorf("session put: %w", errors.Join(model.ErrBackendUnavailable, err))
	}
	return nil
}

// Get returns the current refresh token for the session. Absence collapses
// "never issued", "expired" and "revoked" into model.ErrSessionNotFound;
// callers cannot distinguish them.
func (s *Store) Get(ctx context.Context, userID string, sessionID string) (string, error) {
	val, err := s.rdb.Get(ctx, key(userID, sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", model.ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("session get: %w", errors.Join(model.ErrBackendUnavailable, err))
	}
	return val, nil
}

// Revoke deletes the session key. Revoking an absent session is not an
// error.
func (s *Store) Revoke(ctx context.Context, userID string, sessionID string) error {
	if err := s.rdb.Del(ctx, key(userID, sessionID)).Err(); err != nil {
		return fmt.Errorf("session revoke: %w", errors.Join(model.ErrBackendUnavailable, err))
	}
	return nil
}

func key(userID string, sessionID string) string {
	return userID + ":" + sessionID
}
