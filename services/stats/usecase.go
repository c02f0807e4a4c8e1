package stats

import (
	"context"

	"github.com/ridemate/ridemate/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ridemate/ridemate/services/stats StatsUC

// StatsUC represents the platform statistics usecase interface
type StatsUC interface {
	GetPlatformStats(ctx context.Context) (*models.PlatformStats, error)
	GetUserStats(ctx context.Context) (*models.UserStats, error)
	GetDriverStats(ctx context.Context) (*models.DriverStats, error)
	GetRideStats(ctx context.Context) (*models.RideStats, error)
}
