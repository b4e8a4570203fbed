package service

import (
	"context"
	"time"

	"github.com/tanishkamehta000/food-truck-tracker/internal/model"
)

// SightingStore is the logical sighting collection. Writes are append-only
// except the one-way pending → verified transition and the retention
// sweep's delete.
type SightingStore interface {
	Insert(ctx context.Context, s *model.Sighting) error

	// FindByName returns every sighting whose name matches exactly,
	// case-sensitive, regardless of status or age. Verification matching
	// must see verified sightings of any age, so no filtering happens here.
	FindByName(ctx context.Context, name string) ([]model.Sighting, error)

	// Promote flips the given sightings to verified if and only if they are
	// currently pending, in one atomic write. Already-verified rows are
	// untouched, deleted rows are skipped: the transition is monotonic and
	// idempotent under concurrent callers.
	Promote(ctx context.Context, ids []string, verifiedAt time.Time) (int64, error)

	// DeleteExpired removes every non-verified sighting older than cutoff
	// and returns how many were deleted.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)

	ListAll(ctx context.Context) ([]model.Sighting, error)
}

// FlagStore persists the singleton verification policy document.
type FlagStore interface {
	Get(ctx context.Context) (model.VerificationFlag, error)
	Set(ctx context.Context, f model.VerificationFlag) error
}

// VendorStore reads vendor profiles. The photo-approval workflow that
// writes verificationStatus lives elsewhere.
type VendorStore interface {
	Get(ctx context.Context, vendorKey string) (*model.VendorProfile, error)
}

// AdminSightingStore is the bulk-delete tooling surface. Distinct from the
// verification lookup on purpose: the case-insensitive fallback must never
// leak into quorum matching.
type AdminSightingStore interface {
	DeleteByNameExact(ctx context.Context, name string) (int64, error)
	DeleteByNameFold(ctx context.Context, name string) (int64, error)
}
