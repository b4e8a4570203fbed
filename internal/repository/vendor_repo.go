package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tanishkamehta000/food-truck-tracker/internal/model"
)

type VendorRepo struct {
	pool *pgxpool.Pool
}

func NewVendorRepo(pool *pgxpool.Pool) *VendorRepo {
	return &VendorRepo{pool: pool}
}

// Get returns the vendor profile for the given key, or nil if none
// exists. The photo-verification workflow owns the writes.
func (r *VendorRepo) Get(ctx context.Context, vendorKey string) (*model.VendorProfile, error) {
	var (
		v      model.VendorProfile
		status *string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT vendor_key, truck_name, cuisine_type, menu, verification_status
		FROM vendors WHERE vendor_key = $1`, vendorKey).
		Scan(&v.VendorKey, &v.TruckName, &v.CuisineType, &v.Menu, &status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if status != nil {
		v.VerificationStatus = *status
	}
	return &v, nil
}
