// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"database/sql"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/metrics"
)

// blockingWorker counts its runs and blocks until the context is cancelled.
type blockingWorker struct {
	started atomic.Int32
	stopped atomic.Int32
}

func (b *blockingWorker) Run(ctx context.Context) {
	b.started.Add(1)
	<-ctx.Done()
	b.stopped.Add(1)
}

func runInBackground(ctx context.Context, ws *Workers) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()
	return done
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestWorkers_Run_AllWorkersRunConcurrently(t *testing.T) {
	w1, w2, w3 := &blockingWorker{}, &blockingWorker{}, &blockingWorker{}
	ws := NewWorkers(w1, w2, w3)

	ctx, cancel := context.WithCancel(context.Background())
	done := runInBackground(ctx, ws)

	// every worker blocks, so all three starting proves they run side by side
	waitFor(t, func() bool {
		return w1.started.Load() == 1 && w2.started.Load() == 1 && w3.started.Load() == 1
	})

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	for i, w := range []*blockingWorker{w1, w2, w3} {
		if w.stopped.Load() != 1 {
			t.Errorf("worker[%d]: expected stopped=1, got %d", i, w.stopped.Load())
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()
	if ws.Len() != 0 {
		t.Errorf("expected no workers, got %d", ws.Len())
	}

	// returns immediately
	ws.Run(context.Background())
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
}

type countingPruner struct {
	mu    sync.Mutex
	calls int
}

func (c *countingPruner) PruneExpired(_ context.Context, _ time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return 1
}

func (c *countingPruner) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func TestSessionJanitor_PrunesEveryInterval(t *testing.T) {
	pruner := &countingPruner{}
	ctx, cancel := context.WithCancel(context.Background())
	done := runInBackground(ctx, NewWorkers(NewSessionJanitor(pruner, 5*time.Millisecond, logger.Nop())))

	waitFor(t, func() bool { return pruner.count() >= 2 })

	cancel()
	<-done
}

func TestSessionJanitor_NoTickBeforeInterval(t *testing.T) {
	pruner := &countingPruner{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	NewSessionJanitor(pruner, time.Hour, logger.Nop()).Run(ctx)

	if pruner.count() != 0 {
		t.Errorf("expected no prune calls, got %d", pruner.count())
	}
}

type fixedStats sql.DBStats

func (f fixedStats) Stats() sql.DBStats {
	return sql.DBStats(f)
}

func TestDBStatsExporter_RecordsPoolStats(t *testing.T) {
	m := metrics.NewMetrics("workers")
	stats := fixedStats{OpenConnections: 3, InUse: 1, Idle: 2}

	ctx, cancel := context.WithCancel(context.Background())
	done := runInBackground(ctx, NewWorkers(NewDBStatsExporter(stats, m, 5*time.Millisecond, logger.Nop())))

	waitFor(t, func() bool {
		return testutil.ToFloat64(m.DBConnPoolStats.WithLabelValues("open")) == 3
	})

	cancel()
	<-done

	if got := testutil.ToFloat64(m.DBConnPoolStats.WithLabelValues("idle")); got != 2 {
		t.Errorf("expected idle=2, got %v", got)
	}
}
