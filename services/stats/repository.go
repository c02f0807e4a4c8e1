package stats

import (
	"context"

	"github.com/ridemate/ridemate/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ridemate/ridemate/services/stats StatsRepo

// StatsRepo defines the aggregate queries behind the admin dashboard
type StatsRepo interface {
	UserStats(ctx context.Context) (*models.UserStats, error)
	DriverStats(ctx context.Context) (*models.DriverStats, error)
	RideStats(ctx context.Context) (*models.RideStats, error)
}
