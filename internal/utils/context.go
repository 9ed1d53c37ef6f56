// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, session tokens,
// slug generation, redirects and HTTP response writing.
package utils

import (
	"context"

	"github.com/MKhiriev/go-notes/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the identity middleware stores the
// [models.Identity] of the current request.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext retrieves the request identity from the context.
//
// A missing value or a value of an unexpected type yields the anonymous
// identity, so callers never have to deal with a nil principal.
func GetIdentityFromContext(ctx context.Context) models.Identity {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	if !ok {
		return models.Anonymous()
	}
	return identity
}
