package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/service"
)

// DefaultRetentionInterval is used when the configured interval is not
// positive.
const DefaultRetentionInterval = time.Hour

// RetentionWorker prunes the local version history once on start and then
// every interval.
type RetentionWorker struct {
	retention service.ClientRetentionService
	interval  time.Duration
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRetentionWorker(retention service.ClientRetentionService, interval time.Duration, logger *logger.Logger) *RetentionWorker {
	if interval <= 0 {
		interval = DefaultRetentionInterval
	}
	return &RetentionWorker{retention: retention, interval: interval, logger: logger}
}

// Run stops a previous run before starting again.
func (w *RetentionWorker) Run(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		w.prune(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.prune(jobCtx)
			}
		}
	}()
}

// Stop is a no-op when the worker is not running.
func (w *RetentionWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *RetentionWorker) prune(ctx context.Context) {
	removed, err := w.retention.PruneAll(ctx)
	if err != nil && ctx.Err() == nil {
		w.logger.Err(err).Str("func", "RetentionWorker.prune").Int("removed", removed).Msg("retention pass incomplete")
	}
}
