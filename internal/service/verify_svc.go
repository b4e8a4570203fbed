package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tanishkamehta000/food-truck-tracker/internal/model"
)

// VerificationEngine runs the promotion state machine on every report
// submission: already-verified short-circuit, vendor auto-verify,
// distinct-reporter quorum, and the method-flag gate on community
// promotion.
type VerificationEngine struct {
	store   SightingStore
	vendors VendorStore
	policy  *PolicyService
	matcher *MatcherService
	cache   *CacheService
	quorum  int
	now     func() time.Time
}

func NewVerificationEngine(store SightingStore, vendors VendorStore, policy *PolicyService, matcher *MatcherService, cache *CacheService, quorum int) *VerificationEngine {
	return &VerificationEngine{
		store:   store,
		vendors: vendors,
		policy:  policy,
		matcher: matcher,
		cache:   cache,
		quorum:  quorum,
		now:     time.Now,
	}
}

// Submit processes one report end to end. The sequence is fixed for a
// single submission: check already-verified, write the new report,
// recount quorum, conditionally promote. Between concurrent submissions
// there is no ordering guarantee; the store's monotonic Promote makes
// double-promotion a harmless no-op.
func (e *VerificationEngine) Submit(ctx context.Context, req model.ReportRequest) (*model.ReportResult, error) {
	now := e.now()

	isVendor := req.Role == model.RoleVendor
	var err error
	if isVendor {
		req, err = e.fillFromVendorProfile(ctx, req)
	} else {
		err = validateUserReport(req)
	}
	if err != nil {
		return nil, err
	}

	// Already-verified short-circuit runs against the unfiltered
	// name-matched set so no new pending cycle starts for a verified truck.
	nameMatches, err := e.matcher.NameMatches(ctx, req.FoodTruckName)
	if err != nil {
		return nil, err
	}
	if HasVerified(nameMatches) {
		return &model.ReportResult{Outcome: model.OutcomeAlreadyVerified}, nil
	}

	sighting := buildSighting(req, now, isVendor)
	if err := e.store.Insert(ctx, sighting); err != nil {
		return nil, err
	}
	e.invalidateMarkers(ctx)

	// Vendor self-reports are born verified; no quorum counting.
	if isVendor {
		return &model.ReportResult{
			Outcome:    model.OutcomeVerified,
			SightingID: sighting.ID,
		}, nil
	}

	similar := e.matcher.FilterSimilar(sighting.Location, nameMatches, now)
	cluster := append(similar, *sighting)

	unique := countDistinctReporters(cluster)
	if unique < e.quorum {
		return &model.ReportResult{
			Outcome:         model.OutcomePending,
			SightingID:      sighting.ID,
			UniqueReporters: unique,
			NeededReports:   e.quorum - unique,
		}, nil
	}

	// Quorum reached. The method flag decides whether community consensus
	// is allowed to promote at all.
	flag := e.policy.Current(ctx)
	if !flag.AllowsCommunityPromotion() {
		return &model.ReportResult{
			Outcome:         model.OutcomePendingApproval,
			SightingID:      sighting.ID,
			UniqueReporters: unique,
		}, nil
	}

	ids := make([]string, 0, len(cluster))
	for _, s := range cluster {
		ids = append(ids, s.ID)
	}
	promoted, err := e.store.Promote(ctx, ids, now)
	if err != nil {
		return nil, err
	}
	log.Printf("verification: %q promoted (%d sightings flipped, %d unique reporters)",
		req.FoodTruckName, promoted, unique)
	e.invalidateMarkers(ctx)

	return &model.ReportResult{
		Outcome:         model.OutcomeVerified,
		SightingID:      sighting.ID,
		UniqueReporters: unique,
	}, nil
}

// fillFromVendorProfile resolves a vendor self-check-in against the
// vendor's own profile. Truck name and cuisine come from the profile;
// their absence there is a validation error, not a pipeline decision.
func (e *VerificationEngine) fillFromVendorProfile(ctx context.Context, req model.ReportRequest) (model.ReportRequest, error) {
	if req.VendorKey == "" {
		return req, validationErr("vendorKey", "is required for vendor reports")
	}
	profile, err := e.vendors.Get(ctx, req.VendorKey)
	if err != nil {
		return req, err
	}
	if profile == nil {
		return req, validationErr("vendorKey", "does not match a vendor profile")
	}
	if req.FoodTruckName == "" {
		req.FoodTruckName = profile.TruckName
	}
	if req.CuisineType == "" {
		req.CuisineType = profile.CuisineType
	}
	if strings.TrimSpace(req.FoodTruckName) == "" {
		return req, validationErr("foodTruckName", "is missing from the vendor profile")
	}
	if req.CuisineType == "" {
		return req, validationErr("cuisineType", "is missing from the vendor profile")
	}
	if !req.HasCoordinates() {
		return req, validationErr("location", "latitude and longitude are required")
	}
	return req, nil
}

func validateUserReport(req model.ReportRequest) error {
	if strings.TrimSpace(req.FoodTruckName) == "" {
		return validationErr("foodTruckName", "is required")
	}
	if req.CuisineType == "" {
		return validationErr("cuisineType", "is required")
	}
	if !model.CuisineTypes[req.CuisineType] {
		return validationErr("cuisineType", "is not in the cuisine catalog")
	}
	if req.CrowdLevel == "" {
		return validationErr("crowdLevel", "is required")
	}
	if !req.HasCoordinates() {
		return validationErr("location", "latitude and longitude are required")
	}
	return nil
}

func buildSighting(req model.ReportRequest, now time.Time, isVendor bool) *model.Sighting {
	identity := model.NewReporterIdentity(req.ReporterID, req.ReporterEmail)

	s := &model.Sighting{
		ID:              uuid.NewString(),
		FoodTruckName:   strings.TrimSpace(req.FoodTruckName),
		CuisineType:     req.CuisineType,
		CrowdLevel:      req.CrowdLevel,
		AdditionalNotes: strings.TrimSpace(req.AdditionalNotes),
		FavoriteItems:   req.FavoriteItems,
		Location: model.Location{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
			Address:   req.Address,
		},
		Timestamp:         now,
		Status:            model.StatusPending,
		ReporterKey:       identity.Key(),
		ReporterRole:      model.RoleUser,
		ConfirmationCount: 1,
	}

	if isVendor {
		s.Status = model.StatusVerified
		verifiedAt := now
		s.VerifiedAt = &verifiedAt
		s.ReporterRole = model.RoleVendor
		s.InventoryLevel = req.InventoryLevel
	}

	return s
}

// countDistinctReporters counts dedup keys, not raw reports: two reports
// from the same key count once toward quorum.
func countDistinctReporters(sightings []model.Sighting) int {
	keys := make(map[string]struct{}, len(sightings))
	for _, s := range sightings {
		if s.ReporterKey != "" {
			keys[s.ReporterKey] = struct{}{}
		}
	}
	return len(keys)
}

func (e *VerificationEngine) invalidateMarkers(ctx context.Context) {
	if e.cache == nil {
		return
	}
	if err := e.cache.InvalidateMarkers(ctx); err != nil {
		log.Printf("cache: invalidate markers error: %v", err)
	}
}
