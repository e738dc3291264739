// Package memory provides an in-memory UserStore used in tests and local
// development without a database.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/tastebud-app/tastebud-backend/internal/models"
	"github.com/tastebud-app/tastebud-backend/internal/storage"
)

var _ storage.UserStore = (*Store)(nil)

// Store keeps users in a map guarded by a mutex.
type Store struct {
	mu    sync.RWMutex
	users map[uuid.UUID]models.User
}

// NewStore returns an empty in-memory store.
func NewStore() *Store {
	return &Store{users: make(map[uuid.UUID]models.User)}
}

// CreateUser inserts a user, enforcing email uniqueness like the database
// unique index does.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return models.User{}, storage.ErrAlreadyExists
		}
	}
	s.users[user.ID] = user
	return user, nil
}

// FindByEmail returns the user with the given email, case-sensitive.
func (s *Store) FindByEmail(ctx context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

// FindByID returns the user with the given id.
func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

// DeleteUser removes a user. Tests use it to simulate an account deleted
// out-of-band.
func (s *Store) DeleteUser(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}
