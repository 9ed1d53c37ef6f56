package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/mock"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/internal/validators"
	"github.com/MKhiriev/go-notes/models"
)

var testAppConfig = config.App{
	TokenSignKey:     "test-sign-key",
	TokenIssuer:      "go-notes-test",
	TokenDuration:    time.Hour,
	PasswordHashCost: bcrypt.MinCost,
}

// newTestAuthSvc builds an authService over mocks. Form validation is the
// real one so field errors look exactly like in production.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository, *mock.MockSessionStorage) {
	t.Helper()
	users := mock.NewMockUserRepository(ctrl)
	sessions := mock.NewMockSessionStorage(ctrl)

	svc, err := NewAuthService(users, sessions, validators.NewAuthFormValidator(validators.NewFormValidator()), testAppConfig, logger.Nop())
	require.NoError(t, err)

	return svc.(*authService), users, sessions
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "author", u.Username)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret-pass")))
			u.UserID = 7
			return u, nil
		},
	)

	user, err := svc.Register(ctx, models.SignupForm{Username: "author", Password1: "s3cret-pass", Password2: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestAuthService_Register_InvalidForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Register(context.Background(), models.SignupForm{Username: "author", Password1: "s3cret-pass", Password2: "other-pass"})

	require.ErrorIs(t, err, validators.ErrInvalidForm)
	fieldErrors, ok := validators.AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{validators.MsgPasswordsDiffer}, fieldErrors.Get(validators.FieldPassword2))
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrUsernameAlreadyExists)

	_, err := svc.Register(ctx, models.SignupForm{Username: "author", Password1: "s3cret-pass", Password2: "s3cret-pass"})

	fieldErrors, ok := validators.AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{validators.MsgUsernameTaken}, fieldErrors.Get(validators.FieldUsername))
}

func TestAuthService_Register_PasswordTooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)
	password := strings.Repeat("ж", 40) // 80 bytes, 40 runes

	_, err := svc.Register(context.Background(), models.SignupForm{Username: "author", Password1: password, Password2: password})

	fieldErrors, ok := validators.AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{validators.MsgPasswordTooLong}, fieldErrors.Get(validators.FieldPassword1))
}

func TestAuthService_Register_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrExecutingStatement)

	_, err := svc.Register(ctx, models.SignupForm{Username: "author", Password1: "s3cret-pass", Password2: "s3cret-pass"})

	require.ErrorIs(t, err, store.ErrExecutingStatement)
	assert.NotErrorIs(t, err, validators.ErrInvalidForm)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByUsername(ctx, "author").
		Return(models.User{UserID: 7, Username: "author", PasswordHash: hashPassword(t, "s3cret-pass")}, nil)

	token, err := svc.Login(ctx, models.LoginForm{Username: "author", Password: "s3cret-pass"})
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.NotEmpty(t, token.SessionID)
	assert.Equal(t, int64(7), token.UserID)

	parsed, err := utils.ValidateAndParseSessionToken(token.SignedString, testAppConfig.TokenSignKey, testAppConfig.TokenIssuer)
	require.NoError(t, err)
	assert.Equal(t, token.SessionID, parsed.SessionID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByUsername(ctx, "author").
		Return(models.User{UserID: 7, Username: "author", PasswordHash: hashPassword(t, "s3cret-pass")}, nil)

	_, err := svc.Login(ctx, models.LoginForm{Username: "author", Password: "wrong-pass"})

	fieldErrors, ok := validators.AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{validators.MsgInvalidLogin}, fieldErrors.Get(validators.NonFieldErrors))
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByUsername(ctx, "ghost").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, models.LoginForm{Username: "ghost", Password: "whatever"})

	fieldErrors, ok := validators.AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{validators.MsgInvalidLogin}, fieldErrors.Get(validators.NonFieldErrors))
}

func TestAuthService_Login_EmptyForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), models.LoginForm{})

	fieldErrors, ok := validators.AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{validators.MsgRequired}, fieldErrors.Get(validators.FieldUsername))
	assert.Equal(t, []string{validators.MsgRequired}, fieldErrors.Get(validators.FieldPassword))
}

func TestAuthService_Login_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByUsername(ctx, "author").Return(models.User{}, store.ErrScanningRow)

	_, err := svc.Login(ctx, models.LoginForm{Username: "author", Password: "s3cret-pass"})

	require.ErrorIs(t, err, store.ErrScanningRow)
}

// ── ParseSession / Logout ────────────────────────────────────────────────────

func issueToken(t *testing.T, sessionID string) models.Token {
	t.Helper()
	token, err := utils.GenerateSessionToken(testAppConfig.TokenIssuer, models.User{UserID: 7, Username: "author"}, sessionID, time.Hour, testAppConfig.TokenSignKey)
	require.NoError(t, err)
	return token
}

func TestAuthService_ParseSession_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	token := issueToken(t, "sid-1")

	sessions.EXPECT().IsRevoked(ctx, "sid-1").Return(false, nil)

	identity, err := svc.ParseSession(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, models.Identity{UserID: 7, Username: "author", SessionID: "sid-1"}, identity)
}

func TestAuthService_ParseSession_Revoked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	token := issueToken(t, "sid-1")

	sessions.EXPECT().IsRevoked(ctx, "sid-1").Return(true, nil)

	identity, err := svc.ParseSession(ctx, token.SignedString)
	require.ErrorIs(t, err, ErrInvalidSession)
	assert.False(t, identity.IsAuthenticated())
}

func TestAuthService_ParseSession_Garbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.ParseSession(context.Background(), "not-a-token")
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestAuthService_ParseSession_WrongKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)
	token, err := utils.GenerateSessionToken(testAppConfig.TokenIssuer, models.User{UserID: 7}, "sid-1", time.Hour, "another-key")
	require.NoError(t, err)

	_, err = svc.ParseSession(context.Background(), token.SignedString)
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestAuthService_ParseSession_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	token := issueToken(t, "sid-1")
	storageErr := errors.New("redis is down")

	sessions.EXPECT().IsRevoked(ctx, "sid-1").Return(false, storageErr)

	_, err := svc.ParseSession(ctx, token.SignedString)
	require.ErrorIs(t, err, storageErr)
	assert.NotErrorIs(t, err, ErrInvalidSession)
}

func TestAuthService_Logout_RevokesUntilExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	token := issueToken(t, "sid-1")

	sessions.EXPECT().Revoke(ctx, "sid-1", time.Unix(token.ExpiresAt, 0)).Return(nil)

	require.NoError(t, svc.Logout(ctx, token.SignedString))
}

func TestAuthService_Logout_InvalidTokenIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)

	assert.NoError(t, svc.Logout(context.Background(), "not-a-token"))
	assert.NoError(t, svc.Logout(context.Background(), ""))
}

func TestAuthService_Logout_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	token := issueToken(t, "sid-1")

	sessions.EXPECT().Revoke(ctx, "sid-1", gomock.Any()).Return(store.ErrExecutingStatement)

	require.ErrorIs(t, svc.Logout(ctx, token.SignedString), store.ErrExecutingStatement)
}
