package workers

import (
	"context"
	"sync"
)

// Workers runs a fixed set of workers concurrently.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Len reports how many workers are registered.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker in its own goroutine and returns once all of them
// have returned after ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}
