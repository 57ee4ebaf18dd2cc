package event

import (
	"context"
	"sort"
	"sync"
)

type InMemEventRepo struct {
	lock   sync.Mutex
	events map[string]Event
}

func NewInMemEventRepo() *InMemEventRepo {
	return &InMemEventRepo{
		events: make(map[string]Event),
	}
}

func (m *InMemEventRepo) Get(ctx context.Context, eventID string) (*Event, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	ev, ok := m.events[eventID]
	if !ok {
		return nil, nil
	}
	cp := ev
	cp.Participants = append([]Participant(nil), ev.Participants...)
	return &cp, nil
}

func (m *InMemEventRepo) List(ctx context.Context) ([]Event, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	events := make([]Event, 0, len(m.events))
	for _, ev := range m.events {
		cp := ev
		cp.Participants = append([]Participant(nil), ev.Participants...)
		events = append(events, cp)
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].CreatedAt.Before(events[j].CreatedAt)
	})
	return events, nil
}

func (m *InMemEventRepo) Save(ctx context.Context, ev *Event) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	cp := *ev
	cp.Participants = append([]Participant(nil), ev.Participants...)
	m.events[ev.ID] = cp
	return nil
}

func (m *InMemEventRepo) Delete(ctx context.Context, eventID string) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	delete(m.events, eventID)
	return nil
}
