package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/tanishkamehta000/food-truck-tracker/internal/model"
)

// Field length limits matching database schema constraints.
const (
	MaxTruckNameLen  = 50  // sightings.food_truck_name VARCHAR(50)
	MaxNotesLen      = 200 // sightings.additional_notes VARCHAR(200)
	MaxReporterLen   = 72  // "id:" prefix + id must fit reporter_key VARCHAR(80)
	MaxVendorKeyLen  = 80  // vendors.vendor_key VARCHAR(80)
	MaxFavoriteItems = 20
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateTruckName trims and checks the truck name. Returns the cleaned
// name, or an error message for the caller to surface.
func ValidateTruckName(name string) (string, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "foodTruckName is required"
	}
	if len(name) > MaxTruckNameLen {
		return "", "foodTruckName must be at most 50 characters"
	}
	return name, ""
}

// ValidateCuisine checks the cuisine against the fixed catalog.
func ValidateCuisine(cuisine string) (string, string) {
	cuisine = strings.TrimSpace(cuisine)
	if cuisine == "" {
		return "", "cuisineType is required"
	}
	if !model.CuisineTypes[cuisine] {
		return "", "cuisineType is not a recognized cuisine"
	}
	return cuisine, ""
}

// ValidateCrowdLevel checks a crowd level value. Empty is allowed here;
// the engine decides whether the reporter's role requires one.
func ValidateCrowdLevel(level string) (string, string) {
	switch level {
	case "", model.CrowdLight, model.CrowdModerate, model.CrowdBusy:
		return level, ""
	}
	return "", "crowdLevel must be Light, Moderate, or Busy"
}

// ValidateInventoryLevel checks a vendor inventory value; empty allowed.
func ValidateInventoryLevel(level string) (string, string) {
	switch level {
	case "", model.InventoryPlenty, model.InventoryLow, model.InventoryAlmostOut:
		return level, ""
	}
	return "", "inventoryLevel must be Plenty, Running Low, or Almost Out"
}

// ValidateCoordinates checks that a coordinate pair is present and on the
// globe.
func ValidateCoordinates(lat, lon *float64) string {
	if lat == nil || lon == nil {
		return "latitude and longitude are required"
	}
	if *lat < -90 || *lat > 90 {
		return "latitude must be between -90 and 90"
	}
	if *lon < -180 || *lon > 180 {
		return "longitude must be between -180 and 180"
	}
	return ""
}

// ValidateReporterID checks the length of an optional reporter id.
func ValidateReporterID(id string) string {
	if len(id) > MaxReporterLen {
		return "reporterId is too long"
	}
	return ""
}

// ValidateVendorKey checks the length of a vendor key.
func ValidateVendorKey(key string) string {
	if len(key) > MaxVendorKeyLen {
		return "vendorKey is too long"
	}
	return ""
}

// ValidateNotes trims and truncates free-text notes to DB limits.
func ValidateNotes(notes string) string {
	notes = strings.TrimSpace(notes)
	if len(notes) > MaxNotesLen {
		notes = notes[:MaxNotesLen]
	}
	return notes
}

// ValidateFavoriteItems drops empties and caps the list length.
func ValidateFavoriteItems(items []string) []string {
	var out []string
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		out = append(out, it)
		if len(out) == MaxFavoriteItems {
			break
		}
	}
	return out
}
