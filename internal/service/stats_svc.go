package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tanishkamehta000/food-truck-tracker/internal/model"
)

// StatsService computes the dashboard aggregates straight from Postgres.
type StatsService struct {
	pool *pgxpool.Pool
}

func NewStatsService(pool *pgxpool.Pool) *StatsService {
	return &StatsService{pool: pool}
}

// GetStats returns platform-wide reporting aggregates.
func (s *StatsService) GetStats(ctx context.Context) (*model.StatsResponse, error) {
	var resp model.StatsResponse

	err := s.pool.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'verified'),
			COUNT(DISTINCT reporter_key),
			COUNT(DISTINCT food_truck_name)
		FROM sightings`).Scan(
		&resp.TotalSightings, &resp.VerifiedSightings,
		&resp.UniqueReporters, &resp.UniqueTrucks,
	)
	if err != nil {
		return nil, err
	}

	if resp.UniqueReporters > 0 {
		resp.ReportsPerUser = float64(resp.TotalSightings) / float64(resp.UniqueReporters)
	}

	weekAgo := time.Now().Add(-7 * 24 * time.Hour)
	rows, err := s.pool.Query(ctx, `
		SELECT food_truck_name, COUNT(*) AS reports
		FROM sightings
		WHERE reported_at >= $1
		GROUP BY food_truck_name
		ORDER BY reports DESC, food_truck_name ASC
		LIMIT 3`, weekAgo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var tc model.TruckCount
		if err := rows.Scan(&tc.Name, &tc.Count); err != nil {
			return nil, err
		}
		resp.TopTrucksThisWeek = append(resp.TopTrucksThisWeek, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if resp.TopTrucksThisWeek == nil {
		resp.TopTrucksThisWeek = []model.TruckCount{}
	}
	return &resp, nil
}
