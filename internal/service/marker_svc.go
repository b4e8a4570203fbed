package service

import (
	"fmt"

	"github.com/tanishkamehta000/food-truck-tracker/internal/model"
)

// BuildMarkers derives the map-visible marker set from the sighting
// collection: drop sightings without coordinates, collapse duplicates on
// (name, lat, lon) preferring the verified one, and derive a display
// color. Read-only projection; nothing here feeds back into the state
// machine.
func BuildMarkers(sightings []model.Sighting) []model.Marker {
	grouped := make(map[string]model.Sighting)
	var order []string

	for _, s := range sightings {
		if !s.Location.Valid() {
			continue
		}
		key := fmt.Sprintf("%s_%v_%v", s.FoodTruckName, *s.Location.Latitude, *s.Location.Longitude)
		existing, ok := grouped[key]
		if !ok {
			grouped[key] = s
			order = append(order, key)
			continue
		}
		// A verified sighting always wins its group; otherwise keep the
		// representative we already have.
		if existing.Status != model.StatusVerified && s.Status == model.StatusVerified {
			grouped[key] = s
		}
	}

	markers := make([]model.Marker, 0, len(order))
	for _, key := range order {
		s := grouped[key]
		markers = append(markers, model.Marker{
			SightingID:    s.ID,
			FoodTruckName: s.FoodTruckName,
			CuisineType:   s.CuisineType,
			CrowdLevel:    s.CrowdLevel,
			Latitude:      *s.Location.Latitude,
			Longitude:     *s.Location.Longitude,
			Address:       s.Location.Address,
			Status:        s.Status,
			Color:         MarkerColor(s),
			Description:   markerDescription(s),
		})
	}
	return markers
}

// MarkerColor maps a sighting to its pin color: vendor-verified beats any
// crowd level, then busy > moderate > light > unknown.
func MarkerColor(s model.Sighting) string {
	if s.ReporterRole == model.RoleVendor && s.Status == model.StatusVerified {
		return model.ColorPurple
	}
	switch s.CrowdLevel {
	case model.CrowdBusy:
		return model.ColorRed
	case model.CrowdModerate:
		return model.ColorYellow
	case model.CrowdLight:
		return model.ColorGreen
	default:
		return model.ColorGray
	}
}

func markerDescription(s model.Sighting) string {
	verification := "Verified"
	if s.Status == model.StatusPending {
		verification = "Pending"
	}
	if s.CrowdLevel == "" {
		return fmt.Sprintf("%s • Verification: %s", s.CuisineType, verification)
	}
	return fmt.Sprintf("%s • %s • Verification: %s", s.CuisineType, s.CrowdLevel, verification)
}
