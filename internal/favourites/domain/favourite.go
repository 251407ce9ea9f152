package domain

import (
	"context"
	"time"
)

// Favourite is a denormalized copy of an exercise record plus the moment it
// was saved. Favourites are keyed by (user, exercise name): a user can hold
// at most one favourite per exercise name.
type Favourite struct {
	ExerciseID   string    `json:"id,omitempty"`
	Name         string    `json:"name"`
	Type         string    `json:"type,omitempty"`
	Muscle       string    `json:"muscle,omitempty"`
	Equipment    string    `json:"equipment,omitempty"`
	Difficulty   string    `json:"difficulty,omitempty"`
	Instructions string    `json:"instructions,omitempty"`
	AddedAt      time.Time `json:"addedAt"`
}

// Store owns the per-user favourite sequences. Add returns
// errors.ErrFavouriteExists on a duplicate (user, name) pair; Remove returns
// errors.ErrFavouriteNotFound when nothing matched; Clear is idempotent.
type Store interface {
	List(ctx context.Context, userID string) ([]Favourite, error)
	Add(ctx context.Context, userID string, fav Favourite) error
	Remove(ctx context.Context, userID, exerciseName string) error
	Clear(ctx context.Context, userID string) error
}
