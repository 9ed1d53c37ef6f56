package models

// NoteForm carries the fields submitted by the add and edit forms.
//
// The "form" tag names the HTML input and is also used as the field name in
// validation errors; "slug" and "username" are custom validator rules.
type NoteForm struct {
	Title string `form:"title" validate:"required,max=100"`
	Text  string `form:"text" validate:"required"`
	Slug  string `form:"slug" validate:"omitempty,max=100,slug"`
}

// NoteFormFromNote pre-fills a form with the values of an existing note.
func NoteFormFromNote(note Note) NoteForm {
	return NoteForm{
		Title: note.Title,
		Text:  note.Text,
		Slug:  note.Slug,
	}
}

// Apply copies the form values into note. AuthorID and ID are left untouched.
func (f NoteForm) Apply(note Note) Note {
	note.Title = f.Title
	note.Text = f.Text
	note.Slug = f.Slug
	return note
}

// SignupForm carries the fields of the sign-up page.
type SignupForm struct {
	Username  string `form:"username" validate:"required,max=150,username"`
	Password1 string `form:"password1" validate:"required,min=8,max=128"`
	Password2 string `form:"password2" validate:"required,eqfield=Password1"`
}

// LoginForm carries the fields of the login page.
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}
