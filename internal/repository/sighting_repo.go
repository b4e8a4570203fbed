package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tanishkamehta000/food-truck-tracker/internal/model"
)

const sightingColumns = `
	id, food_truck_name, cuisine_type, crowd_level, inventory_level,
	additional_notes, favorite_items, latitude, longitude, address,
	reported_at, status, verified_at, reporter_key, reporter_role,
	confirmation_count`

type SightingRepo struct {
	pool *pgxpool.Pool
}

func NewSightingRepo(pool *pgxpool.Pool) *SightingRepo {
	return &SightingRepo{pool: pool}
}

// Insert appends a new sighting document.
func (r *SightingRepo) Insert(ctx context.Context, s *model.Sighting) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO sightings (
			id, food_truck_name, cuisine_type, crowd_level, inventory_level,
			additional_notes, favorite_items, latitude, longitude, address,
			reported_at, status, verified_at, reporter_key, reporter_role,
			confirmation_count
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)`,
		s.ID, s.FoodTruckName, nullable(s.CuisineType), nullable(s.CrowdLevel),
		nullable(s.InventoryLevel), s.AdditionalNotes, s.FavoriteItems,
		s.Location.Latitude, s.Location.Longitude, s.Location.Address,
		s.Timestamp, s.Status, s.VerifiedAt, s.ReporterKey, s.ReporterRole,
		s.ConfirmationCount)
	return err
}

// FindByName returns all sightings whose name matches exactly
// (case-sensitive). This is the verification lookup: no status, age, or
// proximity filtering happens at the query level.
func (r *SightingRepo) FindByName(ctx context.Context, name string) ([]model.Sighting, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+sightingColumns+` FROM sightings WHERE food_truck_name = $1`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSightings(rows)
}

// Promote flips the given sightings to verified in one conditional
// update. The status guard makes the transition monotonic: a concurrent
// promotion of the same cluster, or a row already verified by another
// session, is a no-op rather than a conflict. Ids deleted by a racing
// sweep are skipped silently.
func (r *SightingRepo) Promote(ctx context.Context, ids []string, verifiedAt time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE sightings
		SET status = 'verified', verified_at = $1
		WHERE id = ANY($2) AND status = 'pending'`,
		verifiedAt, ids)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// DeleteExpired removes non-verified sightings older than cutoff.
// Verified rows are excluded in the statement itself, so the sweep can
// never delete one no matter how stale its timestamp is.
func (r *SightingRepo) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM sightings
		WHERE status <> 'verified' AND reported_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ListAll returns the full live collection, newest first.
func (r *SightingRepo) ListAll(ctx context.Context) ([]model.Sighting, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+sightingColumns+` FROM sightings ORDER BY reported_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSightings(rows)
}

// DeleteByNameExact removes all sightings with the exact name. Admin
// tooling only.
func (r *SightingRepo) DeleteByNameExact(ctx context.Context, name string) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM sightings WHERE food_truck_name = $1`, name)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// DeleteByNameFold removes all sightings matching the name
// case-insensitively. Only called after DeleteByNameExact found nothing;
// verification matching never uses this.
func (r *SightingRepo) DeleteByNameFold(ctx context.Context, name string) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM sightings WHERE lower(food_truck_name) = lower($1)`, name)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanSightings(rows pgx.Rows) ([]model.Sighting, error) {
	var sightings []model.Sighting
	for rows.Next() {
		var (
			s                         model.Sighting
			cuisine, crowd, inventory *string
		)
		err := rows.Scan(
			&s.ID, &s.FoodTruckName, &cuisine, &crowd, &inventory,
			&s.AdditionalNotes, &s.FavoriteItems,
			&s.Location.Latitude, &s.Location.Longitude, &s.Location.Address,
			&s.Timestamp, &s.Status, &s.VerifiedAt, &s.ReporterKey,
			&s.ReporterRole, &s.ConfirmationCount,
		)
		if err != nil {
			return nil, err
		}
		s.CuisineType = deref(cuisine)
		s.CrowdLevel = deref(crowd)
		s.InventoryLevel = deref(inventory)
		sightings = append(sightings, s)
	}
	return sightings, rows.Err()
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
