package dto

import (
	"time"

	"github.com/Induma-Magammana/FitLife-Tracker/internal/auth/domain"
)

// UserOutput is the password-stripped projection returned to clients.
type UserOutput struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthOutput pairs the projection with a freshly issued bearer token.
type AuthOutput struct {
	User  UserOutput `json:"user"`
	Token string     `json:"token"`
}

func NewUserOutput(u *domain.User) UserOutput {
	return UserOutput{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
