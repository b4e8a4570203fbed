package service

import (
	"context"
	"testing"
	"time"

	"github.com/tanishkamehta000/food-truck-tracker/internal/model"
)

func TestSweepExpired_DeletesOnlyStalePending(t *testing.T) {
	now := time.Now()
	verifiedAt := now.Add(-30 * 24 * time.Hour)
	store := &fakeSightingStore{sightings: []model.Sighting{
		{ID: "stale-pending", Status: model.StatusPending, Timestamp: now.Add(-25 * time.Hour)},
		{ID: "fresh-pending", Status: model.StatusPending, Timestamp: now.Add(-23 * time.Hour)},
		{ID: "old-verified", Status: model.StatusVerified, Timestamp: verifiedAt, VerifiedAt: &verifiedAt},
	}}
	svc := NewRetentionService(store, nil, 24*time.Hour)

	result, err := svc.SweepExpired(context.Background(), now)
	if err != nil {
		t.Fatalf("SweepExpired error: %v", err)
	}

	if result.DeletedCount != 1 {
		t.Errorf("deleted = %d, want 1", result.DeletedCount)
	}
	if store.byID("stale-pending") != nil {
		t.Error("stale pending sighting should be deleted")
	}
	if store.byID("fresh-pending") == nil {
		t.Error("fresh pending sighting should survive")
	}
	if store.byID("old-verified") == nil {
		t.Error("verified sighting should survive regardless of age")
	}
}

func TestSweepExpired_Idempotent(t *testing.T) {
	now := time.Now()
	store := &fakeSightingStore{sightings: []model.Sighting{
		{ID: "stale", Status: model.StatusPending, Timestamp: now.Add(-48 * time.Hour)},
		{ID: "fresh", Status: model.StatusPending, Timestamp: now.Add(-time.Hour)},
	}}
	svc := NewRetentionService(store, nil, 24*time.Hour)
	ctx := context.Background()

	first, err := svc.SweepExpired(ctx, now)
	if err != nil {
		t.Fatalf("first sweep error: %v", err)
	}
	second, err := svc.SweepExpired(ctx, now)
	if err != nil {
		t.Fatalf("second sweep error: %v", err)
	}

	if first.DeletedCount != 1 {
		t.Errorf("first sweep deleted %d, want 1", first.DeletedCount)
	}
	if second.DeletedCount != 0 {
		t.Errorf("second sweep deleted %d, want 0 (idempotent)", second.DeletedCount)
	}
	if store.byID("fresh") == nil {
		t.Error("fresh sighting should survive both sweeps")
	}
}

func TestSweepExpired_EmptyStore(t *testing.T) {
	svc := NewRetentionService(&fakeSightingStore{}, nil, 24*time.Hour)

	result, err := svc.SweepExpired(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("SweepExpired error: %v", err)
	}
	if result.DeletedCount != 0 {
		t.Errorf("deleted = %d, want 0", result.DeletedCount)
	}
}
