package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName returns "First Last", falling back to the username when
// the first name is empty.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.Username
	}
	return u.FirstName + " " + u.LastName
}

// Author is a user as seen in recipe listings and subscription lists,
// annotated relative to the viewer.
type Author struct {
	User
	IsSubscribed bool
}
