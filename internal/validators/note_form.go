package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/models"
)

// Form field names of [models.NoteForm].
const (
	FieldTitle = "title"
	FieldText  = "text"
	FieldSlug  = "slug"
)

type noteFormValidator struct {
	forms *FormValidator
	notes store.NoteRepository
}

// NewNoteFormValidator returns a [NoteFormValidator] that checks slug
// uniqueness against notes.
func NewNoteFormValidator(forms *FormValidator, notes store.NoteRepository) NoteFormValidator {
	return &noteFormValidator{
		forms: forms,
		notes: notes,
	}
}

// ValidateNoteForm trims the inputs, applies the tag rules, derives an empty
// slug from the title and finally makes sure no other note uses the slug.
// The derived slug goes through the same uniqueness check as a typed one.
func (v *noteFormValidator) ValidateNoteForm(ctx context.Context, form *models.NoteForm, noteID int64) error {
	form.Title = strings.TrimSpace(form.Title)
	form.Text = strings.TrimSpace(form.Text)
	form.Slug = strings.TrimSpace(form.Slug)

	fieldErrors := make(FieldErrors)
	if err := v.forms.Struct(form); err != nil {
		tagErrors, ok := AsFieldErrors(err)
		if !ok {
			return err
		}
		fieldErrors = tagErrors
	}

	if form.Slug == "" && len(fieldErrors.Get(FieldTitle)) == 0 {
		form.Slug = utils.Slugify(form.Title)
		if form.Slug == "" {
			fieldErrors.Add(FieldSlug, MsgSlugNotDerived)
		}
	}

	if form.Slug != "" && len(fieldErrors.Get(FieldSlug)) == 0 {
		exists, err := v.notes.SlugExists(ctx, form.Slug, noteID)
		if err != nil {
			return fmt.Errorf("error checking slug uniqueness: %w", err)
		}
		if exists {
			fieldErrors.Add(FieldSlug, form.Slug+SlugExistsWarning)
		}
	}

	if len(fieldErrors) > 0 {
		return fieldErrors
	}
	return nil
}
