package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/policy"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/internal/validators"
	"github.com/MKhiriev/go-notes/models"
)

type noteService struct {
	noteRepository store.NoteRepository
	validator      validators.NoteFormValidator
	denied         AccessDeniedRecorder

	logger *logger.Logger
}

// NewNoteService returns a NoteService over noteRepository. denied may be nil.
func NewNoteService(noteRepository store.NoteRepository, validator validators.NoteFormValidator, denied AccessDeniedRecorder, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		validator:      validator,
		denied:         denied,
		logger:         logger,
	}
}

// List returns the notes written by identity, and nothing else.
func (s *noteService) List(ctx context.Context, identity models.Identity) ([]models.Note, error) {
	if !identity.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	notes, err := s.noteRepository.ListByAuthor(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("listing notes of user %d: %w", identity.UserID, err)
	}

	return notes, nil
}

// Create validates form and stores a new note authored by identity.
// A slug taken concurrently between validation and insert is reported as the
// same field error the validator produces.
func (s *noteService) Create(ctx context.Context, identity models.Identity, form *models.NoteForm) (models.Note, error) {
	if !identity.IsAuthenticated() {
		return models.Note{}, ErrNotAuthenticated
	}

	if err := s.validator.ValidateNoteForm(ctx, form, 0); err != nil {
		return models.Note{}, err
	}

	note, err := s.noteRepository.Create(ctx, form.Apply(models.Note{AuthorID: identity.UserID}))
	if errors.Is(err, store.ErrSlugAlreadyExists) {
		return models.Note{}, slugTakenError(form.Slug)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", identity.UserID).Msg("note creation failed")
		return models.Note{}, fmt.Errorf("note creation failed: %w", err)
	}

	return note, nil
}

// Get looks up the note by slug and asks the policy whether identity may
// perform action on it. A refusal is ErrAccessDenied, a missing note is
// store.ErrNoteNotFound; callers treat both the same way.
func (s *noteService) Get(ctx context.Context, identity models.Identity, slug string, action policy.Action) (models.Note, error) {
	if !identity.IsAuthenticated() {
		return models.Note{}, ErrNotAuthenticated
	}

	note, err := s.noteRepository.GetBySlug(ctx, slug)
	if err != nil {
		return models.Note{}, fmt.Errorf("note %q: %w", slug, err)
	}

	if !policy.CanAccess(identity, note, action) {
		if s.denied != nil {
			s.denied.RecordAccessDenied(action.String())
		}
		logger.FromContext(ctx).Info().
			Int64("user_id", identity.UserID).
			Str("slug", slug).
			Stringer("action", action).
			Msg("access to note denied")
		return models.Note{}, ErrAccessDenied
	}

	return note, nil
}

// Update rewrites title, text and slug of the note identified by slug.
func (s *noteService) Update(ctx context.Context, identity models.Identity, slug string, form *models.NoteForm) (models.Note, error) {
	note, err := s.Get(ctx, identity, slug, policy.ActionEdit)
	if err != nil {
		return models.Note{}, err
	}

	if err = s.validator.ValidateNoteForm(ctx, form, note.ID); err != nil {
		return models.Note{}, err
	}

	updated, err := s.noteRepository.Update(ctx, form.Apply(note))
	if errors.Is(err, store.ErrSlugAlreadyExists) {
		return models.Note{}, slugTakenError(form.Slug)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("note_id", note.ID).Msg("note update failed")
		return models.Note{}, fmt.Errorf("note update failed: %w", err)
	}

	return updated, nil
}

// Delete removes the note identified by slug.
func (s *noteService) Delete(ctx context.Context, identity models.Identity, slug string) error {
	note, err := s.Get(ctx, identity, slug, policy.ActionDelete)
	if err != nil {
		return err
	}

	if err = s.noteRepository.Delete(ctx, note.ID, identity.UserID); err != nil {
		return fmt.Errorf("note deletion failed: %w", err)
	}

	return nil
}

func slugTakenError(slug string) validators.FieldErrors {
	return validators.FieldErrors{validators.FieldSlug: {slug + validators.SlugExistsWarning}}
}
