package model

import "time"

// Sighting statuses. The only transition is pending → verified; nothing
// ever moves a sighting back to pending.
const (
	StatusPending  = "pending"
	StatusVerified = "verified"
)

// Reporter roles recorded on a sighting at report time. Role is about who
// reported, not whether the sighting is verified.
const (
	RoleUser   = "user"
	RoleVendor = "vendor"
)

// Crowd levels reporters can pick.
const (
	CrowdLight    = "Light"
	CrowdModerate = "Moderate"
	CrowdBusy     = "Busy"
)

// Inventory levels, vendor self-reports only.
const (
	InventoryPlenty    = "Plenty"
	InventoryLow       = "Running Low"
	InventoryAlmostOut = "Almost Out"
)

// CuisineTypes is the fixed catalog reporters choose from.
var CuisineTypes = map[string]bool{
	"Mexican":        true,
	"Asian":          true,
	"American":       true,
	"Mediterranean":  true,
	"Italian":        true,
	"Korean":         true,
	"Vietnamese":     true,
	"Chinese":        true,
	"Japanese":       true,
	"Indian":         true,
	"Middle Eastern": true,
	"Dessert":        true,
	"Coffee":         true,
	"Other":          true,
}

// Location is where a truck was sighted. Latitude/Longitude may be nil for
// sightings that predate coordinate capture; those stay in the store but
// never produce map markers.
type Location struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   string   `json:"address,omitempty"`
}

// Valid reports whether the location carries usable coordinates.
func (l Location) Valid() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// Sighting is one report of a truck's location at a point in time.
// Writes are append-only; the only in-place updates are the pending →
// verified transition and the retention sweep's delete.
type Sighting struct {
	ID                string    `json:"id"`
	FoodTruckName     string    `json:"foodTruckName"`
	CuisineType       string    `json:"cuisineType"`
	CrowdLevel        string    `json:"crowdLevel,omitempty"`
	InventoryLevel    string    `json:"inventoryLevel,omitempty"`
	AdditionalNotes   string    `json:"additionalNotes,omitempty"`
	FavoriteItems     []string  `json:"favoriteItems,omitempty"`
	Location          Location  `json:"location"`
	Timestamp         time.Time `json:"timestamp"`
	Status            string    `json:"status"`
	VerifiedAt        *time.Time `json:"verifiedAt,omitempty"`
	ReporterKey       string    `json:"-"`
	ReporterRole      string    `json:"verifiedBy"`
	ConfirmationCount int       `json:"confirmationCount"`
}

// ReportRequest is the API request body for submitting a sighting report.
type ReportRequest struct {
	FoodTruckName   string   `json:"foodTruckName"`
	CuisineType     string   `json:"cuisineType"`
	CrowdLevel      string   `json:"crowdLevel"`
	InventoryLevel  string   `json:"inventoryLevel,omitempty"`
	AdditionalNotes string   `json:"additionalNotes,omitempty"`
	FavoriteItems   []string `json:"favoriteItems,omitempty"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Address         string   `json:"address,omitempty"`
	ReporterID      string   `json:"reporterId,omitempty"`
	ReporterEmail   string   `json:"reporterEmail,omitempty"`
	Role            string   `json:"role,omitempty"`
	VendorKey       string   `json:"vendorKey,omitempty"`
}

// HasCoordinates reports whether the request carries both coordinates.
func (r ReportRequest) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// Report outcomes returned by the verification engine.
const (
	OutcomeAlreadyVerified = "already_verified"
	OutcomeVerified        = "verified"
	OutcomePendingApproval = "pending_approval"
	OutcomePending         = "pending"
)

// ReportResult is what a submission produced.
type ReportResult struct {
	Outcome         string `json:"outcome"`
	SightingID      string `json:"sightingId,omitempty"`
	UniqueReporters int    `json:"uniqueReporters,omitempty"`
	NeededReports   int    `json:"neededReports,omitempty"`
}

// SweepResult is the API response for a retention sweep run.
type SweepResult struct {
	DeletedCount int `json:"deletedCount"`
}

// StatsResponse is the API response for dashboard aggregates.
type StatsResponse struct {
	TotalSightings    int          `json:"totalSightings"`
	VerifiedSightings int          `json:"verifiedSightings"`
	UniqueReporters   int          `json:"uniqueReporters"`
	UniqueTrucks      int          `json:"uniqueTrucks"`
	ReportsPerUser    float64      `json:"reportsPerUser"`
	TopTrucksThisWeek []TruckCount `json:"topTrucksThisWeek"`
}

// TruckCount pairs a truck name with a report count.
type TruckCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TruckDetail is the API response for a single truck lookup.
type TruckDetail struct {
	Sighting     Sighting     `json:"sighting"`
	PopularItems []ItemCount  `json:"popularItems,omitempty"`
	ReportCount  int          `json:"reportCount"`
}

// ItemCount pairs a menu item with how many reports mentioned it.
type ItemCount struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
}
