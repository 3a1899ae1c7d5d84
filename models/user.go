package models

import "time"

// User is an account of the Summarium server. Every note, journal entry,
// task and activity is owned by exactly one user.
type User struct {
	// UserID is the internal identifier. It is never accepted from clients.
	UserID int64 `json:"-"`

	// Login is the unique user login.
	Login string `json:"login" validate:"required,min=3,max=64"`

	// Name is the display name of the user.
	Name string `json:"name,omitempty" validate:"max=128"`

	// Password is only set on register and login requests.
	Password string `json:"password,omitempty" validate:"required,min=6,max=256"`

	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
