package service

import (
	"context"
	"log"
	"time"
)

// RetentionWorker is a periodic background job that runs the retention
// sweep. The sweep is also exposed on demand through the admin API; the
// worker just guarantees it happens even when nobody is looking.
type RetentionWorker struct {
	svc      *RetentionService
	interval time.Duration
	stopCh   chan struct{}
}

// NewRetentionWorker creates a worker that sweeps every interval.
func NewRetentionWorker(svc *RetentionService, interval time.Duration) *RetentionWorker {
	return &RetentionWorker{
		svc:      svc,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic sweep loop. It runs one sweep immediately,
// then every interval.
func (w *RetentionWorker) Start(ctx context.Context) {
	log.Printf("retention-worker: starting (interval=%s)", w.interval)

	w.tick(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.tick(ctx)
		case <-ctx.Done():
			log.Println("retention-worker: stopping (context cancelled)")
			return
		case <-w.stopCh:
			log.Println("retention-worker: stopping (stop signal)")
			return
		}
	}
}

// Stop signals the worker to stop.
func (w *RetentionWorker) Stop() {
	close(w.stopCh)
}

func (w *RetentionWorker) tick(ctx context.Context) {
	start := time.Now()
	res, err := w.svc.SweepExpired(ctx, start)
	if err != nil {
		log.Printf("retention-worker: sweep error: %v", err)
		return
	}
	if res.DeletedCount > 0 {
		log.Printf("retention-worker: tick complete, %d sightings deleted (%s)",
			res.DeletedCount, time.Since(start).Round(time.Millisecond))
	}
}
