package models

import "time"

// User represents an account entity used for authentication and authorization.
// PasswordHash is a bcrypt digest and must never leave the server.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Username is the unique login of the user.
	Username string `json:"username"`

	// Password carries the plain-text password on the way in (sign-up and
	// login forms). It is never persisted.
	Password string `json:"-"`

	// PasswordHash is the bcrypt hash of the password.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
