// Package session persists per-player game state between requests. The
// transport layer owns session identity (the cookie) and lifetime; this
// package only stores and retrieves the state under that id.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"trivia-backend/internal/game"
)

const defaultTTL = 24 * time.Hour

// RedisStore keeps sessions in Redis as JSON with a sliding TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

var _ game.SessionStore = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *RedisStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisStore{
		client: client,
		ttl:    ttl,
		logger: logger.With().Str("component", "session_store").Logger(),
	}
}

func (s *RedisStore) key(id string) string {
	return "session:" + id
}

func (s *RedisStore) Get(ctx context.Context, id string) (*game.Session, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	var sess game.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		// a corrupted session is unrecoverable; treat it as absent
		s.logger.Warn().Err(err).Str("id", id).Msg("dropping unreadable session")
		return nil, nil
	}
	return &sess, nil
}

func (s *RedisStore) Put(ctx context.Context, id string, sess *game.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(id), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
