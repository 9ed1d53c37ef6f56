package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
)

// Storages bundles every repository the services depend on together with the
// connections that back them.
type Storages struct {
	DB             *DB
	NoteRepository NoteRepository
	UserRepository UserRepository
	SessionStorage SessionStorage

	closers []io.Closer
}

// NewStorages opens the database selected by cfg.DB.DSN, applies pending
// migrations and builds the repositories. Revoked sessions go to Redis when
// cfg.Redis.Address is set, otherwise they are kept in memory.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := Connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
		db.Close()
		return nil, err
	}

	storages := &Storages{
		DB:             db,
		NoteRepository: NewNoteRepository(db, log),
		UserRepository: NewUserRepository(db, log),
		closers:        []io.Closer{db},
	}

	if cfg.Redis.Address != "" {
		sessions, err := NewRedisSessionStorage(ctx, cfg.Redis, log)
		if err != nil {
			db.Close()
			return nil, err
		}
		storages.SessionStorage = sessions
		storages.closers = append(storages.closers, sessions)
	} else {
		storages.SessionStorage = NewMemorySessionStorage()
	}

	return storages, nil
}

// Connect opens the database named by cfg.DSN without migrating it.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, err := DialectFromDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "Connect").Msg("cannot choose database backend")
		return nil, err
	}

	switch dialect {
	case DialectSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return NewConnectPostgres(ctx, cfg, log)
	}
}

// DialectFromDSN picks the backend for dsn.
func DialectFromDSN(dsn string) (Dialect, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres, nil
	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"), strings.HasPrefix(dsn, ":memory:"):
		return DialectSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
	}
}

// ExpiredSessionsPruner returns the session storage as a pruner when it needs
// one, and false for storages that expire entries themselves.
func (s *Storages) ExpiredSessionsPruner() (ExpiredSessionsPruner, bool) {
	pruner, ok := s.SessionStorage.(ExpiredSessionsPruner)
	return pruner, ok
}

// Close releases every connection held by s.
func (s *Storages) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i].Close())
	}
	return errors.Join(errs...)
}
