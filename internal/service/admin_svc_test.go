package service

import (
	"context"
	"strings"
	"testing"
)

// fakeAdminStore counts deletions by name, tracking which lookup ran.
type fakeAdminStore struct {
	byName     map[string]int64
	foldCalled bool
}

func (f *fakeAdminStore) DeleteByNameExact(_ context.Context, name string) (int64, error) {
	n := f.byName[name]
	delete(f.byName, name)
	return n, nil
}

func (f *fakeAdminStore) DeleteByNameFold(_ context.Context, name string) (int64, error) {
	f.foldCalled = true
	var n int64
	for k, v := range f.byName {
		if strings.EqualFold(k, name) {
			n += v
			delete(f.byName, k)
		}
	}
	return n, nil
}

func TestDeleteTruck_ExactMatchSkipsFold(t *testing.T) {
	store := &fakeAdminStore{byName: map[string]int64{"Taco Cart": 3}}
	svc := NewAdminService(store, nil)

	deleted, err := svc.DeleteTruck(context.Background(), "Taco Cart")
	if err != nil {
		t.Fatalf("DeleteTruck error: %v", err)
	}

	if deleted != 3 {
		t.Errorf("deleted = %d, want 3", deleted)
	}
	if store.foldCalled {
		t.Error("case-insensitive fallback ran despite exact matches")
	}
}

func TestDeleteTruck_FoldFallbackOnZeroExact(t *testing.T) {
	store := &fakeAdminStore{byName: map[string]int64{"Taco Cart": 2}}
	svc := NewAdminService(store, nil)

	deleted, err := svc.DeleteTruck(context.Background(), "taco cart")
	if err != nil {
		t.Fatalf("DeleteTruck error: %v", err)
	}

	if deleted != 2 {
		t.Errorf("deleted = %d, want 2 via case-insensitive fallback", deleted)
	}
	if !store.foldCalled {
		t.Error("fallback should run when the exact query removes nothing")
	}
}

func TestDeleteTruck_NothingMatches(t *testing.T) {
	store := &fakeAdminStore{byName: map[string]int64{}}
	svc := NewAdminService(store, nil)

	deleted, err := svc.DeleteTruck(context.Background(), "Ghost Truck")
	if err != nil {
		t.Fatalf("DeleteTruck error: %v", err)
	}
	if deleted != 0 {
		t.Errorf("deleted = %d, want 0", deleted)
	}
}
