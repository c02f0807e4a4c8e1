package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ridemate/ridemate/internal/pkg/database"
	"github.com/ridemate/ridemate/internal/pkg/models"
)

// StatsRepo computes the admin dashboard aggregates on postgres. Each view
// is a single scan over its table with filtered counts.
type StatsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new stats repository
func NewStatsRepo(client *database.PostgresClient) *StatsRepo {
	return &StatsRepo{db: client.GetDB()}
}

// UserStats aggregates account counts
func (r *StatsRepo) UserStats(ctx context.Context) (*models.UserStats, error) {
	query := `
		SELECT
			COUNT(*) AS total_users,
			COUNT(*) FILTER (WHERE is_blocked) AS blocked_users,
			COUNT(*) FILTER (WHERE role = $1) AS total_riders,
			COUNT(*) FILTER (WHERE role = $2) AS total_drivers,
			COUNT(*) FILTER (WHERE created_at > NOW() - INTERVAL '7 days') AS new_users_last_7_days,
			COUNT(*) FILTER (WHERE created_at > NOW() - INTERVAL '30 days') AS new_users_last_30_days
		FROM users
	`

	var stats models.UserStats
	if err := r.db.GetContext(ctx, &stats, query, models.RoleRider, models.RoleDriver); err != nil {
		return nil, fmt.Errorf("failed to aggregate user stats: %w", err)
	}

	return &stats, nil
}

// DriverStats aggregates driver profile counts
func (r *StatsRepo) DriverStats(ctx context.Context) (*models.DriverStats, error) {
	query := `
		SELECT
			COUNT(*) AS total_drivers,
			COUNT(*) FILTER (WHERE is_approved) AS approved_drivers,
			COUNT(*) FILTER (WHERE is_approved AND NOT is_suspended AND is_available) AS available_drivers,
			COUNT(*) FILTER (WHERE is_suspended) AS suspended_drivers,
			COUNT(*) FILTER (WHERE created_at > NOW() - INTERVAL '7 days') AS new_drivers_last_7_days,
			COUNT(*) FILTER (WHERE created_at > NOW() - INTERVAL '30 days') AS new_drivers_last_30_days
		FROM drivers
	`

	var stats models.DriverStats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("failed to aggregate driver stats: %w", err)
	}

	return &stats, nil
}

// RideStats aggregates ride counts and revenue. Revenue only counts fares
// of completed rides.
func (r *StatsRepo) RideStats(ctx context.Context) (*models.RideStats, error) {
	query := `
		SELECT
			COUNT(*) AS total_rides,
			COUNT(*) FILTER (WHERE status = $1) AS completed_rides,
			COUNT(*) FILTER (WHERE status = $2) AS cancelled_rides,
			COUNT(*) FILTER (WHERE status NOT IN ($1, $2)) AS active_rides,
			COUNT(*) FILTER (WHERE requested_at >= date_trunc('day', NOW())) AS rides_today,
			COUNT(*) FILTER (WHERE requested_at > NOW() - INTERVAL '7 days') AS new_rides_last_7_days,
			COUNT(DISTINCT rider_id) AS unique_riders,
			COUNT(DISTINCT driver_id) AS unique_drivers,
			COALESCE(SUM(fare) FILTER (WHERE status = $1), 0) AS total_revenue
		FROM rides
	`

	var stats models.RideStats
	err := r.db.GetContext(ctx, &stats, query,
		models.RideStatusCompleted, models.RideStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ride stats: %w", err)
	}

	return &stats, nil
}
