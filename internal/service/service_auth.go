package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/internal/validators"
	"github.com/MKhiriev/go-notes/models"
)

// dummyPassword is hashed once at construction. Logins for unknown users
// compare against it so that both branches spend the same bcrypt time.
const dummyPassword = "go-notes-dummy-password"

// authService is the concrete implementation of AuthService.
// It hashes passwords with bcrypt, issues signed session tokens and keeps
// revoked sessions in a SessionStorage.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessions records revoked session ids.
	sessions store.SessionStorage

	validator validators.AuthFormValidator

	// sessionIDs generates the "jti" claim of new tokens.
	sessionIDs *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	hashCost  int
	dummyHash []byte

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, sessions store.SessionStorage, validator validators.AuthFormValidator, cfg config.App, logger *logger.Logger) (AuthService, error) {
	hashCost := cfg.PasswordHashCost
	if hashCost == 0 {
		hashCost = bcrypt.DefaultCost
	}

	dummyHash, err := bcrypt.GenerateFromPassword([]byte(dummyPassword), hashCost)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	return &authService{
		userRepository: userRepository,
		sessions:       sessions,
		validator:      validator,
		sessionIDs:     utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		hashCost:       hashCost,
		dummyHash:      dummyHash,
		logger:         logger,
	}, nil
}

// Register creates a new user account.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - validators.FieldErrors if the form is invalid or the username is taken.
//   - ErrPasswordHashing if bcrypt fails.
//   - A wrapped storage error for any other repository failure.
func (a *authService) Register(ctx context.Context, form models.SignupForm) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.ValidateSignupForm(ctx, form); err != nil {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password1), a.hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return models.User{}, validators.FieldErrors{validators.FieldPassword1: {validators.MsgPasswordTooLong}}
	}
	if err != nil {
		log.Err(err).Str("username", form.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     form.Username,
		PasswordHash: string(hash),
	})
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		return models.User{}, validators.FieldErrors{validators.FieldUsername: {validators.MsgUsernameTaken}}
	}
	if err != nil {
		log.Err(err).Str("username", form.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// Login authenticates an existing user and issues a session token.
//
// Unknown usernames and wrong passwords produce the same non-field form
// error, so the response does not reveal which usernames exist.
func (a *authService) Login(ctx context.Context, form models.LoginForm) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.ValidateLoginForm(ctx, form); err != nil {
		return models.Token{}, err
	}

	user, err := a.userRepository.FindUserByUsername(ctx, form.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		_ = bcrypt.CompareHashAndPassword(a.dummyHash, []byte(form.Password))
		return models.Token{}, invalidLoginError()
	}
	if err != nil {
		log.Err(err).Str("username", form.Username).Msg("user search by username failed")
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		log.Info().Int64("user_id", user.UserID).Msg("wrong password")
		return models.Token{}, invalidLoginError()
	}

	token, err := utils.GenerateSessionToken(a.tokenIssuer, user, a.sessionIDs.Generate(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseSession validates the token signature, issuer and expiry and checks
// that the session has not been revoked.
func (a *authService) ParseSession(ctx context.Context, tokenString string) (models.Identity, error) {
	token, err := utils.ValidateAndParseSessionToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Anonymous(), ErrInvalidSession
	}

	revoked, err := a.sessions.IsRevoked(ctx, token.SessionID)
	if err != nil {
		return models.Anonymous(), fmt.Errorf("checking session revocation: %w", err)
	}
	if revoked {
		return models.Anonymous(), ErrInvalidSession
	}

	return token.Identity(), nil
}

// Logout revokes the session. An already invalid token has nothing left to
// revoke and is not an error.
func (a *authService) Logout(ctx context.Context, tokenString string) error {
	token, err := utils.ValidateAndParseSessionToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return nil
	}

	if err = a.sessions.Revoke(ctx, token.SessionID, time.Unix(token.ExpiresAt, 0)); err != nil {
		logger.FromContext(ctx).Err(err).Str("session_id", token.SessionID).Msg("session revocation failed")
		return fmt.Errorf("session revocation failed: %w", err)
	}

	return nil
}

func invalidLoginError() validators.FieldErrors {
	return validators.FieldErrors{validators.NonFieldErrors: {validators.MsgInvalidLogin}}
}
