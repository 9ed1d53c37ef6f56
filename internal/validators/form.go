package validators

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// NonFieldErrors is the [FieldErrors] key for errors that belong to the form
// as a whole.
const NonFieldErrors = "__all__"

var (
	slugRegex     = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
	usernameRegex = regexp.MustCompile(`^[\w.@+-]+$`)
)

// FieldErrors maps a form field name to its error messages.
type FieldErrors map[string][]string

// Add appends msg to the messages of field.
func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Get returns the messages of field.
func (e FieldErrors) Get(field string) []string {
	return e[field]
}

// Error lists every message prefixed with its field, sorted by field name.
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e[field], " "))
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrInvalidForm) hold for any FieldErrors.
func (e FieldErrors) Is(target error) bool {
	return target == ErrInvalidForm
}

// AsFieldErrors extracts [FieldErrors] from err.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fieldErrors FieldErrors
	if errors.As(err, &fieldErrors) {
		return fieldErrors, true
	}
	return nil, false
}

// FormValidator runs the struct-tag rules of the forms in package models.
// Field errors are keyed by the "form" tag of the struct field.
type FormValidator struct {
	validate *validator.Validate
}

// NewFormValidator returns a [FormValidator] with the "slug" and "username"
// rules registered.
func NewFormValidator() *FormValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	if err := v.RegisterValidation("slug", validateSlug); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("username", validateUsername); err != nil {
		panic(err)
	}

	return &FormValidator{validate: v}
}

// Struct validates form and returns nil or a non-empty [FieldErrors].
func (v *FormValidator) Struct(form any) error {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fieldErrors := make(FieldErrors, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors.Add(fe.Field(), messageFor(fe))
	}
	return fieldErrors
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgRequired
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters (it has %d).", fe.Param(), utf8.RuneCountInString(fmt.Sprint(fe.Value())))
	case "min":
		return fmt.Sprintf("Ensure this value has at least %s characters (it has %d).", fe.Param(), utf8.RuneCountInString(fmt.Sprint(fe.Value())))
	case "slug":
		return MsgInvalidSlug
	case "username":
		return MsgInvalidUsername
	case "eqfield":
		return MsgPasswordsDiffer
	default:
		return fmt.Sprintf("Failed on the %q rule.", fe.Tag())
	}
}

func validateSlug(fl validator.FieldLevel) bool {
	return slugRegex.MatchString(fl.Field().String())
}

func validateUsername(fl validator.FieldLevel) bool {
	return usernameRegex.MatchString(fl.Field().String())
}
