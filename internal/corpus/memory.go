package corpus

import (
	"context"
	"math/rand/v2"
	"sync"

	"trivia-backend/internal/category"
)

// Memory is an in-process Store with the same sampling semantics as the
// Postgres implementation: stable insertion order, random skip window.
// It backs tests and the zero-dependency dev mode.
type Memory struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]Record
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{byID: make(map[string]Record)}
}

func (m *Memory) Sample(ctx context.Context, categoryKey string, count int) ([]Record, error) {
	filter, err := resolveCategory(categoryKey)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	matching := make([]Record, 0, count)
	for _, id := range m.order {
		rec := m.byID[id]
		if filter == "" || rec.Category == filter {
			matching = append(matching, rec)
		}
	}
	if len(matching) <= count {
		return matching, nil
	}
	skip := rand.IntN(len(matching) - count + 1)
	window := make([]Record, count)
	copy(window, matching[skip:skip+count])
	return window, nil
}

func (m *Memory) Insert(ctx context.Context, rec Record) (Record, error) {
	rec.ID = Fingerprint(rec.Question)
	rec.CorrectIndex = 0

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.byID[rec.ID]; ok {
		return existing, nil
	}
	m.byID[rec.ID] = rec
	m.order = append(m.order, rec.ID)
	return rec, nil
}

func (m *Memory) Remove(ctx context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return 0, ErrNotFound
	}
	delete(m.byID, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return 1, nil
}

func (m *Memory) Count(ctx context.Context, q Query) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if q.Category == "" {
		return int64(len(m.order)), nil
	}
	var n int64
	for _, rec := range m.byID {
		if rec.Category == q.Category {
			n++
		}
	}
	return n, nil
}

// resolveCategory maps a client key to the external name used on records.
// Empty string means unfiltered.
func resolveCategory(key string) (string, error) {
	if key == "" || key == category.KeyAny {
		return "", nil
	}
	c, ok := category.Lookup(key)
	if !ok {
		return "", ErrInvalidCategory
	}
	return c.ExternalName, nil
}
