package validators

import (
	"context"

	"github.com/MKhiriev/go-notes/models"
)

// Form field names of [models.SignupForm] and [models.LoginForm].
const (
	FieldUsername  = "username"
	FieldPassword  = "password"
	FieldPassword1 = "password1"
	FieldPassword2 = "password2"
)

type authFormValidator struct {
	forms *FormValidator
}

// NewAuthFormValidator returns an [AuthFormValidator] backed by forms.
func NewAuthFormValidator(forms *FormValidator) AuthFormValidator {
	return &authFormValidator{forms: forms}
}

// ValidateSignupForm checks the username rules, the password length and that
// both passwords match. Username uniqueness is left to the store.
func (v *authFormValidator) ValidateSignupForm(_ context.Context, form models.SignupForm) error {
	return v.forms.Struct(form)
}

// ValidateLoginForm only checks that both fields are present.
func (v *authFormValidator) ValidateLoginForm(_ context.Context, form models.LoginForm) error {
	return v.forms.Struct(form)
}
