// Package policy decides who may act on a note. Every per-note operation
// asks CanAccess; no other code compares author ids.
package policy

import "github.com/MKhiriev/go-notes/models"

// Action is an operation on a single note.
type Action int

const (
	ActionView Action = iota
	ActionEdit
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionView:
		return "view"
	case ActionEdit:
		return "edit"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// CanAccess reports whether identity may perform action on note. Only the
// authenticated author of a note is allowed anything; the action is accepted
// for callers that log or count decisions per action.
func CanAccess(identity models.Identity, note models.Note, action Action) bool {
	switch action {
	case ActionView, ActionEdit, ActionDelete:
	default:
		return false
	}

	return identity.IsAuthenticated() && identity.UserID == note.AuthorID
}
