package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridemate/ridemate/internal/pkg/apperr"
	"github.com/ridemate/ridemate/internal/pkg/models"
)

func TestMatchDriver_PicksNearest(t *testing.T) {
	uc, m, ctrl := setupRideUC(t)
	defer ctrl.Finish()

	pickup := models.Location{Latitude: 23.80, Longitude: 90.40}
	near := eligibleDriver(uuid.New(), 23.81, 90.40)   // roughly 1 km north
	farther := eligibleDriver(uuid.New(), 23.84, 90.40) // roughly 4.5 km north

	m.driverFinder.EXPECT().
		EligibleDrivers(gomock.Any()).
		Return([]*models.Driver{farther, near}, nil)

	matched, dist, err := uc.matchDriver(context.Background(), pickup)

	require.NoError(t, err)
	assert.Equal(t, near.ID, matched.ID)
	assert.InDelta(t, 1.11, dist, 0.05)
}

func TestMatchDriver_SkipsBeyondRadius(t *testing.T) {
	uc, m, ctrl := setupRideUC(t)
	defer ctrl.Finish()

	pickup := models.Location{Latitude: 23.80, Longitude: 90.40}
	// about 12 km away with a 10 km radius configured
	remote := eligibleDriver(uuid.New(), 23.908, 90.40)

	m.driverFinder.EXPECT().
		EligibleDrivers(gomock.Any()).
		Return([]*models.Driver{remote}, nil)

	_, _, err := uc.matchDriver(context.Background(), pickup)

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestMatchDriver_TieBreaksBySmallestID(t *testing.T) {
	uc, m, ctrl := setupRideUC(t)
	defer ctrl.Finish()

	pickup := models.Location{Latitude: 23.80, Longitude: 90.40}
	low := eligibleDriver(uuid.MustParse("00000000-0000-0000-0000-000000000001"), 23.81, 90.40)
	high := eligibleDriver(uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff"), 23.81, 90.40)

	m.driverFinder.EXPECT().
		EligibleDrivers(gomock.Any()).
		Return([]*models.Driver{high, low}, nil)

	matched, _, err := uc.matchDriver(context.Background(), pickup)

	require.NoError(t, err)
	assert.Equal(t, low.ID, matched.ID)
}

func TestMatchDriver_IgnoresDriversWithoutLocation(t *testing.T) {
	uc, m, ctrl := setupRideUC(t)
	defer ctrl.Finish()

	pickup := models.Location{Latitude: 23.80, Longitude: 90.40}
	unlocated := &models.Driver{ID: uuid.New(), IsApproved: true, IsAvailable: true}

	m.driverFinder.EXPECT().
		EligibleDrivers(gomock.Any()).
		Return([]*models.Driver{unlocated}, nil)

	_, _, err := uc.matchDriver(context.Background(), pickup)

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestMatchDriver_RepositoryError(t *testing.T) {
	uc, m, ctrl := setupRideUC(t)
	defer ctrl.Finish()

	m.driverFinder.EXPECT().
		EligibleDrivers(gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, _, err := uc.matchDriver(context.Background(), models.Location{Latitude: 23.80, Longitude: 90.40})

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindInternal))
}
