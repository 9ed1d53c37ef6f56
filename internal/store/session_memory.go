package store

import (
	"context"
	"sync"
	"time"
)

// MemorySessionStorage keeps revoked session ids in process memory. Entries
// are dropped by PruneExpired, which the session janitor worker calls
// periodically.
type MemorySessionStorage struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
}

// NewMemorySessionStorage returns an empty in-memory [SessionStorage].
func NewMemorySessionStorage() *MemorySessionStorage {
	return &MemorySessionStorage{revoked: make(map[string]time.Time)}
}

func (s *MemorySessionStorage) Revoke(_ context.Context, sessionID string, until time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.revoked[sessionID]; !ok || until.After(current) {
		s.revoked[sessionID] = until
	}
	return nil
}

func (s *MemorySessionStorage) IsRevoked(_ context.Context, sessionID string) (bool, error) {
	s.mu.RLock()
	until, ok := s.revoked[sessionID]
	s.mu.RUnlock()

	return ok && time.Now().Before(until), nil
}

// PruneExpired removes entries whose token has already expired at now and
// returns how many were removed.
func (s *MemorySessionStorage) PruneExpired(_ context.Context, now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := 0
	for id, until := range s.revoked {
		if !now.Before(until) {
			delete(s.revoked, id)
			pruned++
		}
	}
	return pruned
}

func (s *MemorySessionStorage) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.revoked)
}
