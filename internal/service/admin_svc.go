package service

import (
	"context"
	"log"
)

// AdminService backs the bulk-delete tooling. Lookup semantics here are
// deliberately different from verification matching: exact match first,
// then a case-insensitive fallback only when the exact query removed
// nothing. The fallback never participates in quorum matching.
type AdminService struct {
	store AdminSightingStore
	cache *CacheService
}

func NewAdminService(store AdminSightingStore, cache *CacheService) *AdminService {
	return &AdminService{store: store, cache: cache}
}

// DeleteTruck removes every sighting of the named truck and returns how
// many rows went away.
func (a *AdminService) DeleteTruck(ctx context.Context, name string) (int64, error) {
	deleted, err := a.store.DeleteByNameExact(ctx, name)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		deleted, err = a.store.DeleteByNameFold(ctx, name)
		if err != nil {
			return 0, err
		}
	}

	if deleted > 0 {
		log.Printf("admin: deleted %d sightings for truck %q", deleted, name)
		if a.cache != nil {
			if err := a.cache.InvalidateMarkers(ctx); err != nil {
				log.Printf("cache: invalidate markers error: %v", err)
			}
		}
	}
	return deleted, nil
}
