package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/tanishkamehta000/food-truck-tracker/internal/model"
)

// MapService serves the marker projection with a cache-aside layer in
// front of the sighting store.
type MapService struct {
	store SightingStore
	cache *CacheService
}

func NewMapService(store SightingStore, cache *CacheService) *MapService {
	return &MapService{store: store, cache: cache}
}

// VisibleMarkers returns the marker set for the live sighting collection.
func (m *MapService) VisibleMarkers(ctx context.Context) ([]model.Marker, error) {
	if m.cache != nil {
		if data, err := m.cache.GetMarkers(ctx); err == nil && data != nil {
			var markers []model.Marker
			if err := json.Unmarshal(data, &markers); err == nil {
				return markers, nil
			}
		}
	}

	sightings, err := m.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	markers := BuildMarkers(sightings)

	if m.cache != nil {
		if err := m.cache.SetMarkers(ctx, markers); err != nil {
			log.Printf("cache: set markers error: %v", err)
		}
	}
	return markers, nil
}
