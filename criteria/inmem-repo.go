package criteria

import (
	"context"
	"sync"
)

type InMemCriteriaRepo struct {
	lock sync.Mutex
	sets map[string]CriterionSet
}

func NewInMemCriteriaRepo() *InMemCriteriaRepo {
	return &InMemCriteriaRepo{
		sets: make(map[string]CriterionSet),
	}
}

func (m *InMemCriteriaRepo) Get(ctx context.Context, eventID string) (*CriterionSet, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	set, ok := m.sets[eventID]
	if !ok {
		return nil, nil
	}
	cp := set
	cp.Criteria = append([]Criterion(nil), set.Criteria...)
	return &cp, nil
}

func (m *InMemCriteriaRepo) Save(ctx context.Context, set *CriterionSet) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	cp := *set
	cp.Criteria = append([]Criterion(nil), set.Criteria...)
	m.sets[set.EventID] = cp
	return nil
}

func (m *InMemCriteriaRepo) Delete(ctx context.Context, eventID string) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	delete(m.sets, eventID)
	return nil
}
