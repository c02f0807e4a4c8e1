package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridemate/ridemate/internal/pkg/apperr"
	"github.com/ridemate/ridemate/internal/pkg/models"
	"github.com/ridemate/ridemate/services/stats/mocks"
)

func setupStatsUC(t *testing.T) (*StatsUC, *mocks.MockStatsRepo, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	statsRepo := mocks.NewMockStatsRepo(ctrl)
	return NewStatsUC(statsRepo), statsRepo, ctrl
}

func TestGetPlatformStats_Success(t *testing.T) {
	uc, statsRepo, ctrl := setupStatsUC(t)
	defer ctrl.Finish()

	statsRepo.EXPECT().UserStats(gomock.Any()).
		Return(&models.UserStats{TotalUsers: 120, BlockedUsers: 3}, nil)
	statsRepo.EXPECT().DriverStats(gomock.Any()).
		Return(&models.DriverStats{TotalDrivers: 40, ApprovedDrivers: 35}, nil)
	statsRepo.EXPECT().RideStats(gomock.Any()).
		Return(&models.RideStats{TotalRides: 500, TotalRevenue: 61234.50}, nil)

	platform, err := uc.GetPlatformStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 120, platform.Users.TotalUsers)
	assert.Equal(t, 35, platform.Drivers.ApprovedDrivers)
	assert.Equal(t, 61234.50, platform.Rides.TotalRevenue)
}

func TestGetPlatformStats_RepositoryError(t *testing.T) {
	uc, statsRepo, ctrl := setupStatsUC(t)
	defer ctrl.Finish()

	statsRepo.EXPECT().UserStats(gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, err := uc.GetPlatformStats(context.Background())

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindInternal))
}

func TestGetRideStats_Success(t *testing.T) {
	uc, statsRepo, ctrl := setupStatsUC(t)
	defer ctrl.Finish()

	statsRepo.EXPECT().RideStats(gomock.Any()).
		Return(&models.RideStats{CompletedRides: 420, TotalRevenue: 52345.80}, nil)

	rideStats, err := uc.GetRideStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 420, rideStats.CompletedRides)
	assert.Equal(t, 52345.80, rideStats.TotalRevenue)
}
