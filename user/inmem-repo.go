package user

import (
	"context"
	"sync"
)

type InMemUserRepo struct {
	lock  sync.Mutex
	users map[string]UserRow
}

func NewInMemUserRepo() *InMemUserRepo {
	return &InMemUserRepo{
		users: make(map[string]UserRow),
	}
}

func (m *InMemUserRepo) Get(ctx context.Context, userID string) (*UserRow, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	row, ok := m.users[userID]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (m *InMemUserRepo) GetByEmail(ctx context.Context, email string) (*UserRow, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	for _, row := range m.users {
		if row.Email == email {
			cp := row
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *InMemUserRepo) List(ctx context.Context) ([]UserRow, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	rows := make([]UserRow, 0, len(m.users))
	for _, row := range m.users {
		rows = append(rows, row)
	}
	return rows, nil
}

func (m *InMemUserRepo) Save(ctx context.Context, row *UserRow) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.users[row.ID] = *row
	return nil
}
