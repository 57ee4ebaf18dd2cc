package awards

import (
	"context"
	"sync"
)

type InMemAwardRepo struct {
	lock sync.Mutex
	sets map[string]AwardSet
}

func NewInMemAwardRepo() *InMemAwardRepo {
	return &InMemAwardRepo{
		sets: make(map[string]AwardSet),
	}
}

func (m *InMemAwardRepo) Get(ctx context.Context, eventID string) (*AwardSet, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	set, ok := m.sets[eventID]
	if !ok {
		return nil, nil
	}
	cp := set
	cp.Awards = append([]Award(nil), set.Awards...)
	return &cp, nil
}

func (m *InMemAwardRepo) Save(ctx context.Context, set *AwardSet) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	cp := *set
	cp.Awards = append([]Award(nil), set.Awards...)
	m.sets[set.EventID] = cp
	return nil
}

func (m *InMemAwardRepo) Delete(ctx context.Context, eventID string) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	delete(m.sets, eventID)
	return nil
}
