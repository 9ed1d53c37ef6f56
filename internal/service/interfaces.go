package service

import (
	"context"

	"github.com/MKhiriev/go-notes/internal/policy"
	"github.com/MKhiriev/go-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService manages user accounts and their sessions.
type AuthService interface {
	// Register validates form and creates the account. Form problems,
	// including a taken username, are returned as validators.FieldErrors.
	Register(ctx context.Context, form models.SignupForm) (models.User, error)

	// Login checks the credentials and issues a session token. Wrong
	// credentials are reported as a non-field form error.
	Login(ctx context.Context, form models.LoginForm) (models.Token, error)

	// ParseSession turns a session token into an identity. Expired, forged
	// and revoked tokens yield ErrInvalidSession.
	ParseSession(ctx context.Context, token string) (models.Identity, error)

	// Logout revokes the session behind token until the token expires.
	Logout(ctx context.Context, token string) error
}

// NoteService implements the per-user note operations. Every call takes the
// identity of the caller explicitly; ownership is decided by policy.CanAccess.
type NoteService interface {
	List(ctx context.Context, identity models.Identity) ([]models.Note, error)
	Create(ctx context.Context, identity models.Identity, form *models.NoteForm) (models.Note, error)
	Get(ctx context.Context, identity models.Identity, slug string, action policy.Action) (models.Note, error)
	Update(ctx context.Context, identity models.Identity, slug string, form *models.NoteForm) (models.Note, error)
	Delete(ctx context.Context, identity models.Identity, slug string) error
}

// AccessDeniedRecorder is notified when the access policy refuses an
// operation. *metrics.Metrics implements it.
type AccessDeniedRecorder interface {
	RecordAccessDenied(action string)
}
