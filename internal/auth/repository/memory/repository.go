// Package memory provides the in-process UserStore used by tests, demos and
// the default server mode. A single mutex serializes writes, so two
// concurrent registrations with the same email cannot both pass the
// existence check.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/Induma-Magammana/FitLife-Tracker/internal/auth/domain"
	apperrors "github.com/Induma-Magammana/FitLife-Tracker/internal/errors"
)

type UserStore struct {
	mu      sync.RWMutex
	byID    map[string]domain.User
	byEmail map[string]string // lowercased email -> user ID
}

func NewUserStore() *UserStore {
	return &UserStore{
		byID:    make(map[string]domain.User),
		byEmail: make(map[string]string),
	}
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	u := s.byID[id]
	return &u, nil
}

func (s *UserStore) GetByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *UserStore) Create(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(user.Email)
	if _, taken := s.byEmail[email]; taken {
		return apperrors.ErrEmailAlreadyInUse
	}

	s.byID[user.ID] = *user
	s.byEmail[email] = user.ID
	return nil
}

func (s *UserStore) Update(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.byID[user.ID]
	if !ok {
		return apperrors.ErrUserNotFound
	}

	newEmail := strings.ToLower(user.Email)
	oldEmail := strings.ToLower(current.Email)
	if newEmail != oldEmail {
		if owner, taken := s.byEmail[newEmail]; taken && owner != user.ID {
			return apperrors.ErrEmailAlreadyInUse
		}
		delete(s.byEmail, oldEmail)
		s.byEmail[newEmail] = user.ID
	}

	s.byID[user.ID] = *user
	return nil
}
