package service

import (
	"math"
	"testing"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestHaversineMeters_ZeroDistance(t *testing.T) {
	d := HaversineMeters(37.7749, -122.4194, 37.7749, -122.4194)
	if d != 0 {
		t.Errorf("same point distance = %f, want 0", d)
	}
}

func TestHaversineMeters_SymmetricAndNonNegative(t *testing.T) {
	ab := HaversineMeters(37.7749, -122.4194, 37.7858, -122.4064)
	ba := HaversineMeters(37.7858, -122.4064, 37.7749, -122.4194)

	if ab < 0 {
		t.Errorf("distance = %f, want non-negative", ab)
	}
	if !almostEqual(ab, ba, 1e-6) {
		t.Errorf("asymmetric distances: %f vs %f", ab, ba)
	}
}

func TestHaversineMeters_KnownDistance(t *testing.T) {
	// SF Ferry Building to Coit Tower, about 1.2 km great-circle.
	d := HaversineMeters(37.7955, -122.3937, 37.8024, -122.4058)

	if !almostEqual(d, 1300, 100) {
		t.Errorf("Ferry Building → Coit Tower = %.0f m, want ~1300 m", d)
	}
}

func TestHaversineMeters_LongHaul(t *testing.T) {
	// San Francisco to New York, roughly 4130 km.
	d := HaversineMeters(37.7749, -122.4194, 40.7128, -74.0060)

	if !almostEqual(d, 4130000, 10000) {
		t.Errorf("SF → NYC = %.0f m, want ~4,130,000 m", d)
	}
}

// One degree of latitude is ~111,195 m on the sphere the formula assumes.
func TestHaversineMeters_OneDegreeLatitude(t *testing.T) {
	d := HaversineMeters(0, 0, 1, 0)

	want := earthRadiusM * math.Pi / 180
	if !almostEqual(d, want, 1) {
		t.Errorf("one degree latitude = %f m, want %f m", d, want)
	}
}

// metersToLatDegrees converts a north-south offset in meters to a latitude
// delta, used by tests that need points a precise distance apart.
func metersToLatDegrees(m float64) float64 {
	return m / (earthRadiusM * math.Pi / 180)
}

func TestHaversineMeters_ProximityBoundary(t *testing.T) {
	baseLat, baseLon := 37.7749, -122.4194

	near := HaversineMeters(baseLat, baseLon, baseLat+metersToLatDegrees(99), baseLon)
	far := HaversineMeters(baseLat, baseLon, baseLat+metersToLatDegrees(101), baseLon)

	if near >= 100 {
		t.Errorf("99 m offset measured %f m, want < 100", near)
	}
	if far < 100 {
		t.Errorf("101 m offset measured %f m, want >= 100", far)
	}
}
