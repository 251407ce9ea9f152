// Package service applies the favourites rules on top of a Store: name is
// required, duplicates are rejected per (user, exercise name), and the
// added-at timestamp is stamped server-side.
package service

import (
	"context"
	"time"

	"github.com/Induma-Magammana/FitLife-Tracker/internal/favourites/domain"
	apperrors "github.com/Induma-Magammana/FitLife-Tracker/internal/errors"
)

type Service struct {
	store domain.Store
}

func NewService(store domain.Store) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context, userID string) ([]domain.Favourite, error) {
	favs, err := s.store.List(ctx, userID)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return favs, nil
}

// Add stores the denormalized exercise and returns the user's updated list.
func (s *Service) Add(ctx context.Context, userID string, fav domain.Favourite) ([]domain.Favourite, error) {
	if fav.Name == "" {
		return nil, apperrors.NewValidation("invalid exercise data")
	}

	fav.AddedAt = time.Now().UTC()
	if err := s.store.Add(ctx, userID, fav); err != nil {
		return nil, err
	}
	return s.List(ctx, userID)
}

// Remove deletes one favourite by exercise name and returns the updated list.
func (s *Service) Remove(ctx context.Context, userID, exerciseName string) ([]domain.Favourite, error) {
	if err := s.store.Remove(ctx, userID, exerciseName); err != nil {
		return nil, err
	}
	return s.List(ctx, userID)
}

func (s *Service) Clear(ctx context.Context, userID string) error {
	if err := s.store.Clear(ctx, userID); err != nil {
		return apperrors.NewInternal(err)
	}
	return nil
}
