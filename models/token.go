package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set of a session token. The "jti" claim holds the
// session id used for revocation on logout, "sub" holds the user id.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Username is cached in the token to avoid a user lookup per request.
	Username string `json:"username"`
}

// Token wraps a signed session JWT together with the values parsed from it.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`

	// Username is the login of the token owner.
	Username string `json:"-"`

	// SessionID is the "jti" claim.
	SessionID string `json:"-"`

	// ExpiresAt is the expiry of the token as a unix timestamp.
	ExpiresAt int64 `json:"-"`
}

// GetUserID parses the "sub" claim of c as a base-10 int64.
func (c *SessionClaims) GetUserID() (int64, error) {
	userIDString, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// Identity converts the parsed token into a request identity.
func (t Token) Identity() Identity {
	return Identity{
		UserID:    t.UserID,
		Username:  t.Username,
		SessionID: t.SessionID,
	}
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
