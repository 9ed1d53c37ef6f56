// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation and enforcement of business
// rules for the forms of the application.
//
// Core concepts:
//   - FieldErrors: per-field messages re-rendered next to the form inputs.
//   - FormValidator: struct-tag validation on top of go-playground/validator.
//   - NoteFormValidator / AuthFormValidator: form-specific rules, including
//     checks that need the store (slug uniqueness).
//
// Validators never write anything; they may normalise the form they are
// given (for example, derive a missing slug from the title).
package validators

import (
	"context"

	"github.com/MKhiriev/go-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/validators_mock.go -package=mock

// NoteFormValidator validates the add and edit note forms.
type NoteFormValidator interface {
	// ValidateNoteForm checks form and fills in a missing slug. noteID is
	// the id of the note being edited, or zero for a new note; that note is
	// ignored by the slug uniqueness check. An invalid form is reported as
	// [FieldErrors].
	ValidateNoteForm(ctx context.Context, form *models.NoteForm, noteID int64) error
}

// AuthFormValidator validates the sign-up and login forms.
type AuthFormValidator interface {
	ValidateSignupForm(ctx context.Context, form models.SignupForm) error
	ValidateLoginForm(ctx context.Context, form models.LoginForm) error
}
