package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes/internal/logger"
)

// NewDBStatsExporter copies the connection pool statistics of db into
// recorder every interval.
func NewDBStatsExporter(db DBStatser, recorder DBStatsRecorder, interval time.Duration, log *logger.Logger) Worker {
	return &periodic{
		name:     "db_stats",
		interval: interval,
		logger:   log,
		tick: func(context.Context) {
			recorder.RecordDBPoolStats(db.Stats())
		},
	}
}
