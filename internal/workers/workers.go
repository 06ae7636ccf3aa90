package workers

import (
	"context"
	"fmt"
)

// Workers runs its workers sequentially in the order they were added.
type Workers struct {
	workers []Worker
}

// New returns a Workers running ws in order.
func New(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Add appends workers to the run.
func (w *Workers) Add(ws ...Worker) {
	w.workers = append(w.workers, ws...)
}

// Len returns the number of workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run runs every worker in order and stops at the first failure, which is
// returned wrapped with the worker name. A cancelled ctx stops the run before
// the next worker starts.
func (w *Workers) Run(ctx context.Context) error {
	for _, worker := range w.workers {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := worker.Run(ctx); err != nil {
			return fmt.Errorf("%s: %w", worker.Name(), err)
		}
	}
	return nil
}
