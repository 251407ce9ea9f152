package domain

import "time"

// User is the authority-owned record. Email is stored lowercased and is
// unique across the store. PasswordHash never leaves the auth package.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
