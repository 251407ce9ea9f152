// Package memory keeps per-user favourite sequences in process memory,
// preserving insertion order. A single mutex serializes writers so a
// duplicate add cannot slip past the existence check.
package memory

import (
	"context"
	"sync"

	"github.com/Induma-Magammana/FitLife-Tracker/internal/favourites/domain"
	apperrors "github.com/Induma-Magammana/FitLife-Tracker/internal/errors"
)

type Store struct {
	mu     sync.RWMutex
	byUser map[string][]domain.Favourite
}

func NewStore() *Store {
	return &Store{byUser: make(map[string][]domain.Favourite)}
}

func (s *Store) List(_ context.Context, userID string) ([]domain.Favourite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	favs := s.byUser[userID]
	out := make([]domain.Favourite, len(favs))
	copy(out, favs)
	return out, nil
}

func (s *Store) Add(_ context.Context, userID string, fav domain.Favourite) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.byUser[userID] {
		if existing.Name == fav.Name {
			return apperrors.ErrFavouriteExists
		}
	}

	s.byUser[userID] = append(s.byUser[userID], fav)
	return nil
}

func (s *Store) Remove(_ context.Context, userID, exerciseName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	favs := s.byUser[userID]
	for i, fav := range favs {
		if fav.Name == exerciseName {
			s.byUser[userID] = append(favs[:i], favs[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrFavouriteNotFound
}

func (s *Store) Clear(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byUser, userID)
	return nil
}
