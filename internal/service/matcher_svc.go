package service

import (
	"context"
	"time"

	"github.com/tanishkamehta000/food-truck-tracker/internal/model"
)

// MatcherService finds existing sightings that describe the same live
// truck as a new report: same exact name, recent enough, close enough.
type MatcherService struct {
	store  SightingStore
	window time.Duration
	radius float64
}

func NewMatcherService(store SightingStore, window time.Duration, radiusMeters float64) *MatcherService {
	return &MatcherService{store: store, window: window, radius: radiusMeters}
}

// NameMatches returns the full, unfiltered set of sightings with the
// candidate's exact name. The already-verified short-circuit must run
// against this set, before any time or proximity filtering: a verified
// truck is terminal regardless of its own report's age or drift.
func (m *MatcherService) NameMatches(ctx context.Context, truckName string) ([]model.Sighting, error) {
	return m.store.FindByName(ctx, truckName)
}

// HasVerified reports whether any sighting in the set is already verified.
func HasVerified(sightings []model.Sighting) bool {
	for _, s := range sightings {
		if s.Status == model.StatusVerified {
			return true
		}
	}
	return false
}

// FilterSimilar reduces a name-matched set to the sightings that count as
// the same live event as the candidate location: reported within the
// similarity window of now and within the proximity radius of the
// candidate coordinates. Sightings without coordinates never match.
func (m *MatcherService) FilterSimilar(candidate model.Location, sightings []model.Sighting, now time.Time) []model.Sighting {
	if !candidate.Valid() {
		return nil
	}

	oldest := now.Add(-m.window)
	var similar []model.Sighting
	for _, s := range sightings {
		if s.Timestamp.Before(oldest) {
			continue
		}
		if !s.Location.Valid() {
			continue
		}
		dist := HaversineMeters(
			*candidate.Latitude, *candidate.Longitude,
			*s.Location.Latitude, *s.Location.Longitude,
		)
		if dist < m.radius {
			similar = append(similar, s)
		}
	}
	return similar
}
