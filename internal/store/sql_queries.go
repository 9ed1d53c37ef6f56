package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes/models"
)

const (
	notesTable = "notes"
	usersTable = "users"
)

var (
	noteColumns = []string{"id", "title", "text", "slug", "author_id", "created_at"}
	userColumns = []string{"user_id", "username", "password_hash", "created_at"}
)

func buildInsertNoteQuery(b sq.StatementBuilderType, note models.Note) (string, []any, error) {
	query, args, err := b.Insert(notesTable).
		Columns("title", "text", "slug", "author_id", "created_at").
		Values(note.Title, note.Text, note.Slug, note.AuthorID, note.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectNotesByAuthorQuery(b sq.StatementBuilderType, authorID int64) (string, []any, error) {
	query, args, err := b.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"author_id": authorID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectNoteBySlugQuery(b sq.StatementBuilderType, slug string) (string, []any, error) {
	query, args, err := b.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSlugExistsQuery(b sq.StatementBuilderType, slug string, excludeID int64) (string, []any, error) {
	query, args, err := b.Select("COUNT(*)").
		From(notesTable).
		Where(sq.Eq{"slug": slug}).
		Where(sq.NotEq{"id": excludeID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateNoteQuery never sets author_id: the owner of a note is fixed at
// creation.
func buildUpdateNoteQuery(b sq.StatementBuilderType, note models.Note) (string, []any, error) {
	query, args, err := b.Update(notesTable).
		Set("title", note.Title).
		Set("text", note.Text).
		Set("slug", note.Slug).
		Where(sq.Eq{"id": note.ID}).
		Where(sq.Eq{"author_id": note.AuthorID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteNoteQuery(b sq.StatementBuilderType, noteID, authorID int64) (string, []any, error) {
	query, args, err := b.Delete(notesTable).
		Where(sq.Eq{"id": noteID}).
		Where(sq.Eq{"author_id": authorID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCountNotesQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Select("COUNT(*)").From(notesTable).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.Insert(usersTable).
		Columns("username", "password_hash", "created_at").
		Values(user.Username, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING user_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
