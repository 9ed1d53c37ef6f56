// Package workers runs the background jobs of the server next to the HTTP
// listener: pruning expired revoked sessions and exporting database pool
// statistics.
package workers

import (
	"context"
	"database/sql"
)

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// DBStatser is satisfied by *sql.DB and everything embedding it.
type DBStatser interface {
	Stats() sql.DBStats
}

// DBStatsRecorder receives pool statistics, see [metrics.Metrics].
type DBStatsRecorder interface {
	RecordDBPoolStats(stats sql.DBStats)
}
