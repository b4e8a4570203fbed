package middleware

import (
	"strings"
	"testing"
)

func TestValidateTruckName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "Taco Cart", "Taco Cart", false},
		{"trims whitespace", "  Taco Cart  ", "Taco Cart", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"exactly 50", strings.Repeat("a", 50), strings.Repeat("a", 50), false},
		{"too long 51", strings.Repeat("a", 51), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateTruckName(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateCuisine(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "Mexican", "Mexican", false},
		{"trims whitespace", " Korean ", "Korean", false},
		{"catch-all other", "Other", "Other", false},
		{"empty", "", "", true},
		{"not in catalog", "Martian", "", true},
		{"wrong case", "mexican", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateCuisine(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateCrowdLevel(t *testing.T) {
	for _, valid := range []string{"", "Light", "Moderate", "Busy"} {
		if _, errMsg := ValidateCrowdLevel(valid); errMsg != "" {
			t.Errorf("ValidateCrowdLevel(%q) = %q, want no error", valid, errMsg)
		}
	}
	if _, errMsg := ValidateCrowdLevel("Packed"); errMsg == "" {
		t.Error("unknown crowd level should be rejected")
	}
}

func TestValidateInventoryLevel(t *testing.T) {
	for _, valid := range []string{"", "Plenty", "Running Low", "Almost Out"} {
		if _, errMsg := ValidateInventoryLevel(valid); errMsg != "" {
			t.Errorf("ValidateInventoryLevel(%q) = %q, want no error", valid, errMsg)
		}
	}
	if _, errMsg := ValidateInventoryLevel("Sold Out"); errMsg == "" {
		t.Error("unknown inventory level should be rejected")
	}
}

func TestValidateCoordinates(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	tests := []struct {
		name    string
		lat     *float64
		lon     *float64
		wantErr bool
	}{
		{"valid", f(37.7749), f(-122.4194), false},
		{"boundary poles", f(90), f(-180), false},
		{"missing lat", nil, f(-122.4194), true},
		{"missing lon", f(37.7749), nil, true},
		{"lat too high", f(90.01), f(0), true},
		{"lat too low", f(-90.01), f(0), true},
		{"lon too high", f(0), f(180.01), true},
		{"lon too low", f(0), f(-180.01), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errMsg := ValidateCoordinates(tt.lat, tt.lon)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
		})
	}
}

func TestValidateReporterID(t *testing.T) {
	if errMsg := ValidateReporterID(""); errMsg != "" {
		t.Errorf("empty reporter id should be allowed, got %q", errMsg)
	}
	if errMsg := ValidateReporterID(strings.Repeat("a", MaxReporterLen)); errMsg != "" {
		t.Errorf("max-length reporter id should be allowed, got %q", errMsg)
	}
	if errMsg := ValidateReporterID(strings.Repeat("a", MaxReporterLen+1)); errMsg == "" {
		t.Error("over-length reporter id should be rejected")
	}
}

func TestValidateVendorKey(t *testing.T) {
	if errMsg := ValidateVendorKey(strings.Repeat("k", MaxVendorKeyLen)); errMsg != "" {
		t.Errorf("max-length vendor key should be allowed, got %q", errMsg)
	}
	if errMsg := ValidateVendorKey(strings.Repeat("k", MaxVendorKeyLen+1)); errMsg == "" {
		t.Error("over-length vendor key should be rejected")
	}
}

func TestValidateNotes(t *testing.T) {
	if got := ValidateNotes("  great tacos  "); got != "great tacos" {
		t.Errorf("trim failed: got %q", got)
	}
	long := strings.Repeat("x", 300)
	if got := ValidateNotes(long); len(got) != MaxNotesLen {
		t.Errorf("truncation failed: got len %d, want %d", len(got), MaxNotesLen)
	}
}

func TestValidateFavoriteItems(t *testing.T) {
	got := ValidateFavoriteItems([]string{" al pastor ", "", "horchata"})
	if len(got) != 2 || got[0] != "al pastor" || got[1] != "horchata" {
		t.Errorf("got %v, want trimmed non-empty items", got)
	}

	many := make([]string, 30)
	for i := range many {
		many[i] = "item"
	}
	if got := ValidateFavoriteItems(many); len(got) != MaxFavoriteItems {
		t.Errorf("cap failed: got %d items, want %d", len(got), MaxFavoriteItems)
	}
}
