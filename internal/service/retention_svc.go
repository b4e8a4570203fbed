package service

import (
	"context"
	"log"
	"time"

	"github.com/tanishkamehta000/food-truck-tracker/internal/model"
)

// RetentionService purges pending sightings older than the rolling
// retention window. Verified sightings are never touched regardless of
// age; that guarantee lives in the store's DeleteExpired contract and is
// asserted again by the tests.
type RetentionService struct {
	store  SightingStore
	cache  *CacheService
	window time.Duration
}

func NewRetentionService(store SightingStore, cache *CacheService, window time.Duration) *RetentionService {
	return &RetentionService{store: store, cache: cache, window: window}
}

// SweepExpired deletes every non-verified sighting older than now minus
// the retention window. Best-effort: a failed sweep is logged by callers
// and retried on the next pass rather than escalated.
func (r *RetentionService) SweepExpired(ctx context.Context, now time.Time) (*model.SweepResult, error) {
	cutoff := now.Add(-r.window)

	deleted, err := r.store.DeleteExpired(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	if deleted > 0 {
		log.Printf("retention: cleared %d sightings older than %s", deleted, r.window)
		if r.cache != nil {
			if err := r.cache.InvalidateMarkers(ctx); err != nil {
				log.Printf("cache: invalidate markers error: %v", err)
			}
		}
	}

	return &model.SweepResult{DeletedCount: int(deleted)}, nil
}
