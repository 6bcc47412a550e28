package session

import (
	"context"
	"encoding/json"
	"sync"

	"trivia-backend/internal/game"
)

// MemoryStore is the in-process store for tests and single-node dev runs.
// Sessions are copied through JSON on the way in and out so callers never
// share a live pointer with the store, matching the Redis round-trip.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]byte
}

var _ game.SessionStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*game.Session, error) {
	s.mu.RLock()
	data, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	var sess game.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *MemoryStore) Put(ctx context.Context, id string, sess *game.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.sessions[id] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}
