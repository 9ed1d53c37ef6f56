package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := &userRepository{
		db:     NewDB(db, DialectPostgres, l),
		logger: l,
	}
	return repo, mock
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	ctx := context.Background()
	user := models.User{
		Username:     "john",
		Password:     "plain-password",
		PasswordHash: "hash",
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (username,password_hash,created_at)")).
		WithArgs(user.Username, user.PasswordHash, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1))

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.Username != user.Username {
		t.Errorf("expected username %s, got %s", user.Username, created.Username)
	}
	if created.Password != "" {
		t.Errorf("expected plain password to be cleared, got %q", created.Password)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "john"})
	if !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.NotNullViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "john"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("did not expect ErrUsernameAlreadyExists, got %v", err)
	}
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
		WithArgs("john").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "password_hash", "created_at"}).
			AddRow(1, "john", "hash", now))

	user, err := repo.FindUserByUsername(context.Background(), "john")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.UserID != 1 || user.Username != "john" || user.PasswordHash != "hash" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("FROM users").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "password_hash", "created_at"}))

	_, err := repo.FindUserByUsername(context.Background(), "ghost")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByUsername_UnexpectedError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("FROM users").WillReturnError(errors.New("boom"))

	_, err := repo.FindUserByUsername(context.Background(), "john")
	if err == nil || errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected unexpected DB error, got %v", err)
	}
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE user_id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "password_hash", "created_at"}).
			AddRow(7, "jane", "hash", time.Now()))

	user, err := repo.FindUserByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "jane" {
		t.Errorf("expected jane, got %s", user.Username)
	}
}
