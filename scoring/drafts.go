package scoring

import (
	"context"
	"sync"
)

// DraftStore caches unsubmitted score values keyed by DraftKey. Drafts
// are a convenience cache, never the source of truth, so implementations
// may drop them on restart.
type DraftStore interface {
	Get(ctx context.Context, key string) (map[string]float64, error)
	Set(ctx context.Context, key string, scores map[string]float64) error
	Clear(ctx context.Context, key string) error
	Has(ctx context.Context, key string) (bool, error)
}

type InMemDraftStore struct {
	lock   sync.RWMutex
	drafts map[string]map[string]float64
}

func NewInMemDraftStore() *InMemDraftStore {
	return &InMemDraftStore{
		drafts: make(map[string]map[string]float64),
	}
}

func (m *InMemDraftStore) Get(ctx context.Context, key string) (map[string]float64, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	scores, ok := m.drafts[key]
	if !ok {
		return nil, nil
	}
	cp := make(map[string]float64, len(scores))
	for k, v := range scores {
		cp[k] = v
	}
	return cp, nil
}

func (m *InMemDraftStore) Set(ctx context.Context, key string, scores map[string]float64) error {
	cp := make(map[string]float64, len(scores))
	for k, v := range scores {
		cp[k] = v
	}
	m.lock.Lock()
	defer m.lock.Unlock()
	m.drafts[key] = cp
	return nil
}

func (m *InMemDraftStore) Clear(ctx context.Context, key string) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	delete(m.drafts, key)
	return nil
}

func (m *InMemDraftStore) Has(ctx context.Context, key string) (bool, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	scores, ok := m.drafts[key]
	return ok && len(scores) > 0, nil
}
