package users

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps records in process memory. It honours the same
// uniqueness rule as the database.
type MemoryStore struct {
	mu     sync.RWMutex
	byMail map[string]*User
	nextID uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byMail: make(map[string]*User)}
}

func clone(u *User) *User {
	c := *u
	return &c
}

func (s *MemoryStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byMail[email]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(u), nil
}

func (s *MemoryStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byMail[email]
	return ok, nil
}

func (s *MemoryStore) Create(ctx context.Context, u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byMail[u.Email]; exists {
		return ErrAlreadyExists
	}
	s.nextID++
	now := time.Now()
	u.ID = s.nextID
	u.CreatedAt, u.UpdatedAt = now, now
	s.byMail[u.Email] = clone(u)
	return nil
}
