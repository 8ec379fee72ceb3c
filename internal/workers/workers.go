package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-bot-host/internal/config"
	"github.com/MKhiriev/go-bot-host/internal/logger"
	"github.com/MKhiriev/go-bot-host/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers enabled by cfg. The credential
// janitor runs unless cfg.DisableJanitor is set.
func NewWorkers(services *service.Services, observer PurgeObserver, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if !cfg.DisableJanitor && cfg.CleanupInterval > 0 {
		w.workers = append(w.workers, NewCredentialJanitor(services.CredentialService, observer, cfg, logger))
	}

	return w
}

// Run starts every worker in its own goroutine and blocks until all of them
// return.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}
