package session

import "convertor/internal/domain/user"

// MemoryStore - magazie de sesiune în memorie, pentru teste fără disc.
type MemoryStore struct {
	user *user.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Save(u *user.User) error {
	copied := *u
	m.user = &copied
	return nil
}

func (m *MemoryStore) Read() (*user.User, error) {
	if m.user == nil {
		return nil, ErrNoSession
	}
	copied := *m.user
	return &copied, nil
}

func (m *MemoryStore) Clear() error {
	m.user = nil
	return nil
}

func (m *MemoryStore) UpdatePlan(planID int) error {
	if m.user == nil {
		return ErrNoSession
	}
	m.user.PlanID = planID
	return nil
}
