package workers

import "context"

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in registration order. Nil workers are skipped.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		if worker == nil {
			continue
		}
		worker.Run(ctx)
	}
}
