package models

// Identity is the authenticated principal of a single request. The zero
// value is an anonymous visitor.
//
// Identity is threaded explicitly through services and the access policy;
// nothing below the HTTP layer looks it up from ambient state.
type Identity struct {
	UserID    int64
	Username  string
	SessionID string
}

// Anonymous returns the identity of a visitor that is not logged in.
func Anonymous() Identity {
	return Identity{}
}

// IsAuthenticated reports whether the identity belongs to a logged-in user.
func (i Identity) IsAuthenticated() bool {
	return i.UserID != 0
}
