package model

// Marker colors, derived from status and crowd level. Display-only; the
// verification state machine never reads these back.
const (
	ColorPurple = "purple" // vendor-verified truck
	ColorRed    = "red"    // busy
	ColorYellow = "yellow" // moderate
	ColorGreen  = "green"  // light
	ColorGray   = "gray"   // unknown crowd level
)

// Marker is one map pin derived from the sighting collection.
type Marker struct {
	SightingID    string  `json:"sightingId"`
	FoodTruckName string  `json:"foodTruckName"`
	CuisineType   string  `json:"cuisineType"`
	CrowdLevel    string  `json:"crowdLevel,omitempty"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Address       string  `json:"address,omitempty"`
	Status        string  `json:"status"`
	Color         string  `json:"color"`
	Description   string  `json:"description"`
}
