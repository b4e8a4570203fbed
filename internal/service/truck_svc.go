package service

import (
	"context"
	"sort"

	"github.com/tanishkamehta000/food-truck-tracker/internal/model"
)

// TruckService answers single-truck lookups: a representative sighting
// plus the items reporters keep mentioning.
type TruckService struct {
	store SightingStore
}

func NewTruckService(store SightingStore) *TruckService {
	return &TruckService{store: store}
}

// Detail returns the truck's representative sighting (verified preferred,
// else the newest) and popularity counts aggregated from favoriteItems
// across all of its reports. Returns nil when the truck has no sightings.
func (t *TruckService) Detail(ctx context.Context, name string) (*model.TruckDetail, error) {
	sightings, err := t.store.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(sightings) == 0 {
		return nil, nil
	}

	rep := sightings[0]
	for _, s := range sightings[1:] {
		if rep.Status == model.StatusVerified && s.Status != model.StatusVerified {
			continue
		}
		if s.Status == model.StatusVerified && rep.Status != model.StatusVerified {
			rep = s
			continue
		}
		if s.Timestamp.After(rep.Timestamp) {
			rep = s
		}
	}

	return &model.TruckDetail{
		Sighting:     rep,
		PopularItems: PopularItems(sightings),
		ReportCount:  len(sightings),
	}, nil
}

// PopularItems tallies favoriteItems mentions across a sighting set,
// most-mentioned first, ties broken alphabetically for stable output.
func PopularItems(sightings []model.Sighting) []model.ItemCount {
	counts := make(map[string]int)
	for _, s := range sightings {
		for _, item := range s.FavoriteItems {
			if item == "" {
				continue
			}
			counts[item]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	items := make([]model.ItemCount, 0, len(counts))
	for item, n := range counts {
		items = append(items, model.ItemCount{Item: item, Count: n})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Item < items[j].Item
	})
	return items
}
