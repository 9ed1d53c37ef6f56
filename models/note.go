// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Note is a short text record owned by exactly one user and addressed by a
// unique slug.
type Note struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	// Title is a short human-readable heading, at most 100 runes.
	Title string `json:"title"`

	// Text is the free-form body of the note.
	Text string `json:"text"`

	// Slug is the URL-safe identifier of the note. It is unique across all
	// notes, regardless of the author.
	Slug string `json:"slug"`

	// AuthorID references the user who created the note. It is set once at
	// creation and never changes.
	AuthorID int64 `json:"-"`

	// CreatedAt is the timestamp when the note was stored.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}
