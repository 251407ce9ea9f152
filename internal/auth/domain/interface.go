package domain

//go:generate mockgen -destination=../../mocks/mock_user_store.go -package=mocks github.com/Induma-Magammana/FitLife-Tracker/internal/auth/domain UserStore

import "context"

// UserStore abstracts user persistence. GetByEmail and GetByID return
// (nil, nil) when no user matches. Create enforces email uniqueness
// atomically (returning errors.ErrEmailAlreadyInUse on a duplicate) so two
// registrations with the same email cannot both pass the existence check.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
}
