package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// NoteRepository persists notes. Every owner-scoped method takes the author id
// and filters on it in SQL.
type NoteRepository interface {
	// Create inserts note and returns it with ID and CreatedAt populated.
	Create(ctx context.Context, note models.Note) (models.Note, error)

	// ListByAuthor returns the notes of a single author ordered by id.
	ListByAuthor(ctx context.Context, authorID int64) ([]models.Note, error)

	// GetBySlug returns the note with the given slug or [ErrNoteNotFound].
	GetBySlug(ctx context.Context, slug string) (models.Note, error)

	// SlugExists reports whether a note other than excludeID uses slug.
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)

	// Update writes title, text and slug of note. The author is part of the
	// WHERE clause and is never updated.
	Update(ctx context.Context, note models.Note) (models.Note, error)

	// Delete removes the note with noteID owned by authorID.
	Delete(ctx context.Context, noteID, authorID int64) error

	// Count returns the total number of notes.
	Count(ctx context.Context) (int64, error)
}

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// SessionStorage keeps track of revoked session ids until their tokens expire.
type SessionStorage interface {
	// Revoke marks sessionID as revoked until the given moment.
	Revoke(ctx context.Context, sessionID string, until time.Time) error

	// IsRevoked reports whether sessionID has been revoked.
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

// ExpiredSessionsPruner is implemented by session storages that have to drop
// expired entries themselves.
type ExpiredSessionsPruner interface {
	PruneExpired(ctx context.Context, now time.Time) int
}
