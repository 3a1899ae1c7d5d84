package workers

import (
	"context"

	"github.com/MKhiriev/summarium/internal/config"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewClientWorkers returns the background workers of the terminal client.
func NewClientWorkers(services *service.ClientServices, cfg config.ClientWorkers, logger *logger.Logger) *Workers {
	return &Workers{workers: []Worker{
		NewRetentionWorker(services.RetentionService, cfg.RetentionInterval, logger),
	}}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
