package service

import "errors"

var (
	// ErrNotAuthenticated is returned when an anonymous identity calls an
	// operation that needs a logged-in user.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrAccessDenied is returned when the access policy refuses the
	// operation. Handlers answer it exactly like a missing note.
	ErrAccessDenied = errors.New("access denied")

	ErrInvalidSession      = errors.New("session is expired or invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrPasswordHashing     = errors.New("password hashing failed")
)
