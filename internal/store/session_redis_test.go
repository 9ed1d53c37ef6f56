package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
)

func newTestRedisSessionStorage(t *testing.T) (*RedisSessionStorage, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	s, err := NewRedisSessionStorage(context.Background(), config.Redis{Address: mr.Addr()}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s, mr
}

func TestRedisSessionStorage_RevokeAndCheck(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestRedisSessionStorage(t)

	revoked, err := s.IsRevoked(ctx, "sid")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, s.Revoke(ctx, "sid", time.Now().Add(time.Hour)))

	revoked, err = s.IsRevoked(ctx, "sid")
	require.NoError(t, err)
	assert.True(t, revoked)

	ttl := mr.TTL(revokedSessionKeyPrefix + "sid")
	assert.Greater(t, ttl, 59*time.Minute)
	assert.LessOrEqual(t, ttl, time.Hour)
}

func TestRedisSessionStorage_EntryExpires(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestRedisSessionStorage(t)

	require.NoError(t, s.Revoke(ctx, "sid", time.Now().Add(time.Minute)))
	mr.FastForward(2 * time.Minute)

	revoked, err := s.IsRevoked(ctx, "sid")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisSessionStorage_PastExpiryIsNoop(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestRedisSessionStorage(t)

	require.NoError(t, s.Revoke(ctx, "sid", time.Now().Add(-time.Minute)))
	assert.False(t, mr.Exists(revokedSessionKeyPrefix+"sid"))
}

func TestRedisSessionStorage_ServerDown(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestRedisSessionStorage(t)
	mr.Close()

	_, err := s.IsRevoked(ctx, "sid")
	assert.ErrorIs(t, err, ErrExecutingQuery)

	err = s.Revoke(ctx, "sid", time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestNewRedisSessionStorage_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisSessionStorage(context.Background(), config.Redis{Address: addr}, logger.Nop())
	assert.Error(t, err)
}
