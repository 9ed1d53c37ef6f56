package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
)

// NewSessionJanitor drops revoked sessions whose token has expired anyway.
// Only storages without native expiry need it.
func NewSessionJanitor(pruner store.ExpiredSessionsPruner, interval time.Duration, log *logger.Logger) Worker {
	return &periodic{
		name:     "session_janitor",
		interval: interval,
		logger:   log,
		tick: func(ctx context.Context) {
			if pruned := pruner.PruneExpired(ctx, time.Now()); pruned > 0 {
				log.Debug().Int("pruned", pruned).Msg("expired revoked sessions dropped")
			}
		},
	}
}
