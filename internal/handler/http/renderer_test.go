package http

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes/internal/validators"
	"github.com/MKhiriev/go-notes/models"
)

var testNote = models.Note{ID: 1, Title: "First note", Text: "Body", Slug: "first-note", AuthorID: 1, CreatedAt: time.Unix(1700000000, 0)}

func renderPage(t *testing.T, page string, data ViewContext) string {
	t.Helper()
	renderer, err := NewTemplateRenderer()
	require.NoError(t, err)

	if _, ok := data[ctxUser]; !ok {
		data[ctxUser] = models.Anonymous()
	}

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, page, data))
	return buf.String()
}

func TestTemplateRenderer_AllPages(t *testing.T) {
	contexts := map[string]ViewContext{
		PageHome:     {},
		PageList:     {ctxObjectList: []models.Note{testNote}},
		PageForm:     {ctxForm: Form{Data: models.NoteForm{}}},
		PageDetail:   {ctxNote: testNote},
		PageDelete:   {ctxNote: testNote},
		PageSuccess:  {},
		PageSignup:   {ctxForm: Form{Data: models.SignupForm{}}},
		PageLogin:    {ctxForm: Form{Data: models.LoginForm{}}, ctxNext: ""},
		PageLogout:   {},
		PageNotFound: {},
	}
	require.Len(t, contexts, len(pages))

	for page, data := range contexts {
		t.Run(page, func(t *testing.T) {
			out := renderPage(t, page, data)
			assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
			assert.Contains(t, out, "| go-notes</title>")
		})
	}
}

func TestTemplateRenderer_UnknownPage(t *testing.T) {
	renderer, err := NewTemplateRenderer()
	require.NoError(t, err)

	err = renderer.Render(&bytes.Buffer{}, "missing", ViewContext{})
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestTemplateRenderer_ListLinksNotes(t *testing.T) {
	out := renderPage(t, PageList, ViewContext{
		ctxObjectList: []models.Note{testNote},
		ctxUser:       models.Identity{UserID: 1, Username: "author"},
	})

	assert.Contains(t, out, `href="/note/first-note/"`)
	assert.Contains(t, out, "First note")
	assert.Contains(t, out, "Log out (author)")
}

func TestTemplateRenderer_FormShowsErrorsEscaped(t *testing.T) {
	out := renderPage(t, PageForm, ViewContext{
		ctxForm: Form{
			Data:   models.NoteForm{Title: "<script>", Slug: "taken"},
			Errors: validators.FieldErrors{validators.FieldSlug: {"taken" + validators.SlugExistsWarning}},
		},
	})

	assert.Contains(t, out, "taken - such slug already exists, please choose a unique value!")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "New note")
}

func TestTemplateRenderer_EditFormTitle(t *testing.T) {
	out := renderPage(t, PageForm, ViewContext{
		ctxForm: Form{Data: models.NoteFormFromNote(testNote)},
		ctxNote: testNote,
	})

	assert.Contains(t, out, "Edit note")
	assert.Contains(t, out, `value="first-note"`)
}

func TestTemplateRenderer_LoginKeepsNext(t *testing.T) {
	out := renderPage(t, PageLogin, ViewContext{
		ctxForm: Form{Data: models.LoginForm{}},
		ctxNext: "/add/",
	})

	assert.Contains(t, out, `name="next" value="/add/"`)
}
