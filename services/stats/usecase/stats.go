package usecase

import (
	"context"

	"github.com/ridemate/ridemate/internal/pkg/apperr"
	"github.com/ridemate/ridemate/internal/pkg/models"
)

// GetPlatformStats bundles the user, driver and ride aggregates into a
// single dashboard view.
func (u *StatsUC) GetPlatformStats(ctx context.Context) (*models.PlatformStats, error) {
	users, err := u.GetUserStats(ctx)
	if err != nil {
		return nil, err
	}
	drivers, err := u.GetDriverStats(ctx)
	if err != nil {
		return nil, err
	}
	rides, err := u.GetRideStats(ctx)
	if err != nil {
		return nil, err
	}

	return &models.PlatformStats{
		Users:   *users,
		Drivers: *drivers,
		Rides:   *rides,
	}, nil
}

// GetUserStats returns account aggregates
func (u *StatsUC) GetUserStats(ctx context.Context) (*models.UserStats, error) {
	stats, err := u.statsRepo.UserStats(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to load user stats", err)
	}
	return stats, nil
}

// GetDriverStats returns driver profile aggregates
func (u *StatsUC) GetDriverStats(ctx context.Context) (*models.DriverStats, error) {
	stats, err := u.statsRepo.DriverStats(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to load driver stats", err)
	}
	return stats, nil
}

// GetRideStats returns ride aggregates including completed-fare revenue
func (u *StatsUC) GetRideStats(ctx context.Context) (*models.RideStats, error) {
	stats, err := u.statsRepo.RideStats(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to load ride stats", err)
	}
	return stats, nil
}
