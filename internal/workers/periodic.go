package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes/internal/logger"
)

// periodic calls tick every interval until ctx is cancelled. The first call
// happens after one interval, not at start.
type periodic struct {
	name     string
	interval time.Duration
	tick     func(ctx context.Context)
	logger   *logger.Logger
}

func (p *periodic) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info().Str("worker", p.name).Dur("interval", p.interval).Msg("worker started")
	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Str("worker", p.name).Msg("worker stopped")
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}
