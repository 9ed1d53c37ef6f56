package validators

import "errors"

var (
	// ErrInvalidForm is matched by every [FieldErrors] value through errors.Is.
	ErrInvalidForm = errors.New("invalid form")

	// ErrUnsupportedType is returned when a value that is not a struct is
	// handed to the struct validator.
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// Messages attached to form fields. They follow the wording users of the
// notes pages already know.
const (
	MsgRequired        = "This field is required."
	MsgInvalidSlug     = "Enter a valid slug consisting of letters, numbers, underscores or hyphens."
	MsgInvalidUsername = "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	MsgPasswordsDiffer = "The two password fields didn't match."
	MsgInvalidLogin    = "Please enter a correct username and password. Note that both fields may be case-sensitive."
	MsgUsernameTaken   = "A user with that username already exists."
	MsgSlugNotDerived  = "A slug could not be derived from the title, please enter one."
	MsgPasswordTooLong = "Ensure this password has at most 72 bytes."

	// SlugExistsWarning is appended to the offending slug when it is
	// already used by another note.
	SlugExistsWarning = " - such slug already exists, please choose a unique value!"
)
