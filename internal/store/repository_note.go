// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

// noteRepository is the SQL-backed implementation of [NoteRepository].
// It executes all note CRUD operations against the "notes" table using the
// embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (author_id, slug, note_id).
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts a note. CreatedAt is set here, in UTC with microsecond
// precision, not by a column default.
//
// A unique violation on the slug index is reported as [ErrSlugAlreadyExists].
func (n *noteRepository) Create(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	note.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

	query, args, err := buildInsertNoteQuery(n.builder, note)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.Create").Msg("failed to create query")
		return models.Note{}, err
	}

	err = n.withRetry(ctx, func(ctx context.Context) error {
		return n.DB.QueryRowContext(ctx, query, args...).Scan(&note.ID)
	})
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Create").
			Int64("author_id", note.AuthorID).
			Str("slug", note.Slug).
			Msg("failed to insert note")
		if n.errorClassificator.IsUniqueViolation(err) {
			return models.Note{}, ErrSlugAlreadyExists
		}
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return note, nil
}

// ListByAuthor returns every note owned by authorID, oldest first.
// Returns an empty slice when the author has no notes.
func (n *noteRepository) ListByAuthor(ctx context.Context, authorID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNotesByAuthorQuery(n.builder, authorID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.ListByAuthor").Msg("failed to create query")
		return nil, err
	}

	rows, err := n.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListByAuthor").
			Int64("author_id", authorID).
			Msg("failed to execute query for listing notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 16)

	for rows.Next() {
		var note models.Note
		if scanErr := scanNote(rows, &note); scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.ListByAuthor").
				Int64("author_id", authorID).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListByAuthor").
			Int64("author_id", authorID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// GetBySlug returns the note addressed by slug regardless of its author.
// Ownership is decided by the caller.
func (n *noteRepository) GetBySlug(ctx context.Context, slug string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNoteBySlugQuery(n.builder, slug)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.GetBySlug").Msg("failed to create query")
		return models.Note{}, err
	}

	var note models.Note
	err = n.withRetry(ctx, func(ctx context.Context) error {
		return scanNote(n.DB.QueryRowContext(ctx, query, args...), &note)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).
			Str("func", "noteRepository.GetBySlug").
			Str("slug", slug).
			Msg("failed to get note by slug")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

// SlugExists reports whether any note except the one with excludeID already
// uses slug. Pass zero as excludeID when checking a note that does not exist
// yet.
func (n *noteRepository) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSlugExistsQuery(n.builder, slug, excludeID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.SlugExists").Msg("failed to create query")
		return false, err
	}

	var count int64
	if err = n.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "noteRepository.SlugExists").
			Str("slug", slug).
			Msg("failed to check slug")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

// Update writes the editable fields of note. The row is matched on both id and
// author id; zero affected rows yields [ErrNoteNotFound].
func (n *noteRepository) Update(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(n.builder, note)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.Update").Msg("failed to create query")
		return models.Note{}, err
	}

	result, err := n.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Update").
			Int64("note_id", note.ID).
			Int64("author_id", note.AuthorID).
			Msg("failed to update note")
		if n.errorClassificator.IsUniqueViolation(err) {
			return models.Note{}, ErrSlugAlreadyExists
		}
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = expectAffected(result); err != nil {
		log.Err(err).
			Str("func", "noteRepository.Update").
			Int64("note_id", note.ID).
			Int64("author_id", note.AuthorID).
			Msg("note was not updated")
		return models.Note{}, err
	}

	return note, nil
}

// Delete removes the note identified by noteID if it belongs to authorID.
func (n *noteRepository) Delete(ctx context.Context, noteID, authorID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(n.builder, noteID, authorID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.Delete").Msg("failed to create query")
		return err
	}

	result, err := n.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Delete").
			Int64("note_id", noteID).
			Int64("author_id", authorID).
			Msg("failed to delete note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result)
}

// Count returns the number of stored notes.
func (n *noteRepository) Count(ctx context.Context) (int64, error) {
	query, args, err := buildCountNotesQuery(n.builder)
	if err != nil {
		return 0, err
	}

	var count int64
	if err = n.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "noteRepository.Count").Msg("failed to count notes")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner, note *models.Note) error {
	return row.Scan(
		&note.ID,
		&note.Title,
		&note.Text,
		&note.Slug,
		&note.AuthorID,
		&note.CreatedAt,
	)
}

func expectAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}
	return nil
}
