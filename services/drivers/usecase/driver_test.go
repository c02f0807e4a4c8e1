package usecase

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridemate/ridemate/internal/pkg/apperr"
	"github.com/ridemate/ridemate/internal/pkg/models"
	driversmocks "github.com/ridemate/ridemate/services/drivers/mocks"
	usersmocks "github.com/ridemate/ridemate/services/users/mocks"
)

type ucMocks struct {
	driverRepo   *driversmocks.MockDriverRepo
	locationRepo *driversmocks.MockLocationRepo
	userRepo     *usersmocks.MockUserRepo
}

func setupDriverUC(t *testing.T) (*DriverUC, ucMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	m := ucMocks{
		driverRepo:   driversmocks.NewMockDriverRepo(ctrl),
		locationRepo: driversmocks.NewMockLocationRepo(ctrl),
		userRepo:     usersmocks.NewMockUserRepo(ctrl),
	}

	cfg := &models.Config{
		Match: models.MatchConfig{MaxRadiusKm: 10},
	}

	return NewDriverUC(m.driverRepo, m.locationRepo, m.userRepo, cfg), m, ctrl
}

func notFoundErr(id uuid.UUID) error {
	return fmt.Errorf("driver %s: %w", id, sql.ErrNoRows)
}

func TestRegisterDriver_Success(t *testing.T) {
	uc, m, ctrl := setupDriverUC(t)
	defer ctrl.Finish()

	userID := uuid.New()

	m.userRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, Role: models.RoleRider}, nil)
	m.driverRepo.EXPECT().
		GetDriverByUserID(gomock.Any(), userID).
		Return(nil, notFoundErr(userID))
	m.driverRepo.EXPECT().
		CreateDriver(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, driver *models.Driver) error {
			assert.Equal(t, userID, driver.UserID)
			assert.Equal(t, "DHK-1234", driver.VehiclePlate)
			assert.False(t, driver.IsApproved)
			driver.ID = uuid.New()
			return nil
		})

	driver, err := uc.RegisterDriver(context.Background(), userID, &models.RegisterDriverRequest{
		VehicleType:  "sedan",
		VehiclePlate: "dhk-1234",
	})

	require.NoError(t, err)
	assert.False(t, driver.IsApproved)
}

func TestRegisterDriver_Duplicate(t *testing.T) {
	uc, m, ctrl := setupDriverUC(t)
	defer ctrl.Finish()

	userID := uuid.New()

	m.userRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID}, nil)
	m.driverRepo.EXPECT().
		GetDriverByUserID(gomock.Any(), userID).
		Return(&models.Driver{ID: uuid.New(), UserID: userID}, nil)

	driver, err := uc.RegisterDriver(context.Background(), userID, &models.RegisterDriverRequest{
		VehicleType:  "sedan",
		VehiclePlate: "DHK-1234",
	})

	assert.Nil(t, driver)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestRegisterDriver_BlockedUser(t *testing.T) {
	uc, m, ctrl := setupDriverUC(t)
	defer ctrl.Finish()

	userID := uuid.New()

	m.userRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, IsBlocked: true}, nil)

	driver, err := uc.RegisterDriver(context.Background(), userID, &models.RegisterDriverRequest{
		VehicleType:  "sedan",
		VehiclePlate: "DHK-1234",
	})

	assert.Nil(t, driver)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
}

func TestRegisterDriver_MissingVehicle(t *testing.T) {
	uc, _, ctrl := setupDriverUC(t)
	defer ctrl.Finish()

	driver, err := uc.RegisterDriver(context.Background(), uuid.New(), &models.RegisterDriverRequest{})

	assert.Nil(t, driver)
	assert.True(t, apperr.IsKind(err, apperr.KindBadRequest))
}

func TestSetAvailability_RequiresApproval(t *testing.T) {
	uc, m, ctrl := setupDriverUC(t)
	defer ctrl.Finish()

	userID := uuid.New()

	m.driverRepo.EXPECT().
		GetDriverByUserID(gomock.Any(), userID).
		Return(&models.Driver{ID: uuid.New(), UserID: userID, IsApproved: false}, nil)

	driver, err := uc.SetAvailability(context.Background(), userID, true)

	assert.Nil(t, driver)
	assert.True(t, apperr.IsKind(err, apperr.KindBadRequest))
}

func TestSetAvailability_SuspendedDriver(t *testing.T) {
	uc, m, ctrl := setupDriverUC(t)
	defer ctrl.Finish()

	userID := uuid.New()

	m.driverRepo.EXPECT().
		GetDriverByUserID(gomock.Any(), userID).
		Return(&models.Driver{ID: uuid.New(), UserID: userID, IsApproved: true, IsSuspended: true}, nil)

	driver, err := uc.SetAvailability(context.Background(), userID, true)

	assert.Nil(t, driver)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
}

func TestSetAvailability_GoesOnline(t *testing.T) {
	uc, m, ctrl := setupDriverUC(t)
	defer ctrl.Finish()

	userID := uuid.New()
	driverID := uuid.New()
	location := &models.Location{Latitude: 23.81, Longitude: 90.41}

	m.driverRepo.EXPECT().
		GetDriverByUserID(gomock.Any(), userID).
		Return(&models.Driver{ID: driverID, UserID: userID, IsApproved: true, Location: location}, nil)
	m.driverRepo.EXPECT().
		SetAvailability(gomock.Any(), driverID, true).
		Return(nil)
	m.locationRepo.EXPECT().
		AddDriverLocation(gomock.Any(), driverID, *location).
		Return(nil)

	driver, err := uc.SetAvailability(context.Background(), userID, true)

	require.NoError(t, err)
	assert.True(t, driver.IsAvailable)
}

func TestSetAvailability_GoesOffline(t *testing.T) {
	uc, m, ctrl := setupDriverUC(t)
	defer ctrl.Finish()

	userID := uuid.New()
	driverID := uuid.New()

	m.driverRepo.EXPECT().
		GetDriverByUserID(gomock.Any(), userID).
		Return(&models.Driver{ID: driverID, UserID: userID, IsApproved: true, IsAvailable: true}, nil)
	m.driverRepo.EXPECT().
		SetAvailability(gomock.Any(), driverID, false).
		Return(nil)
	m.locationRepo.EXPECT().
		RemoveDriverLocation(gomock.Any(), driverID).
		Return(nil)

	driver, err := uc.SetAvailability(context.Background(), userID, false)

	require.NoError(t, err)
	assert.False(t, driver.IsAvailable)
}

func TestUpdateLocation_InvalidCoordinates(t *testing.T) {
	uc, _, ctrl := setupDriverUC(t)
	defer ctrl.Finish()

	err := uc.UpdateLocation(context.Background(), uuid.New(), &models.UpdateLocationRequest{
		Latitude:  91,
		Longitude: 200,
	})

	assert.True(t, apperr.IsKind(err, apperr.KindBadRequest))
}

func TestUpdateLocation_EligibleDriverIndexed(t *testing.T) {
	uc, m, ctrl := setupDriverUC(t)
	defer ctrl.Finish()

	userID := uuid.New()
	driverID := uuid.New()

	m.driverRepo.EXPECT().
		GetDriverByUserID(gomock.Any(), userID).
		Return(&models.Driver{ID: driverID, UserID: userID, IsApproved: true, IsAvailable: true}, nil)
	m.driverRepo.EXPECT().
		UpdateLocation(gomock.Any(), driverID, models.Location{Latitude: 23.81, Longitude: 90.41}).
		Return(nil)
	m.locationRepo.EXPECT().
		AddDriverLocation(gomock.Any(), driverID, models.Location{Latitude: 23.81, Longitude: 90.41}).
		Return(nil)

	err := uc.UpdateLocation(context.Background(), userID, &models.UpdateLocationRequest{
		Latitude:  23.81,
		Longitude: 90.41,
	})

	assert.NoError(t, err)
}

func TestUpdateLocation_OfflineDriverNotIndexed(t *testing.T) {
	uc, m, ctrl := setupDriverUC(t)
	defer ctrl.Finish()

	userID := uuid.New()
	driverID := uuid.New()

	m.driverRepo.EXPECT().
		GetDriverByUserID(gomock.Any(), userID).
		Return(&models.Driver{ID: driverID, UserID: userID, IsApproved: true, IsAvailable: false}, nil)
	m.driverRepo.EXPECT().
		UpdateLocation(gomock.Any(), driverID, gomock.Any()).
		Return(nil)

	err := uc.UpdateLocation(context.Background(), userID, &models.UpdateLocationRequest{
		Latitude:  23.81,
		Longitude: 90.41,
	})

	assert.NoError(t, err)
}

func TestNearbyDrivers_DefaultRadius(t *testing.T) {
	uc, m, ctrl := setupDriverUC(t)
	defer ctrl.Finish()

	location := models.Location{Latitude: 23.81, Longitude: 90.41}

	m.locationRepo.EXPECT().
		NearbyDrivers(gomock.Any(), location, 10.0).
		Return([]models.NearbyDriver{}, nil)

	_, err := uc.NearbyDrivers(context.Background(), location, 0)

	assert.NoError(t, err)
}

func TestSetSuspension_ClearsAvailability(t *testing.T) {
	uc, m, ctrl := setupDriverUC(t)
	defer ctrl.Finish()

	driverID := uuid.New()

	m.driverRepo.EXPECT().
		GetDriverByID(gomock.Any(), driverID).
		Return(&models.Driver{ID: driverID, IsApproved: true, IsAvailable: true}, nil)
	m.driverRepo.EXPECT().
		SetSuspension(gomock.Any(), driverID, true).
		Return(nil)
	m.locationRepo.EXPECT().
		RemoveDriverLocation(gomock.Any(), driverID).
		Return(nil)

	driver, err := uc.SetSuspension(context.Background(), driverID, true)

	require.NoError(t, err)
	assert.True(t, driver.IsSuspended)
	assert.False(t, driver.IsAvailable)
}

func TestSetApproval_RevokeDropsGeoIndex(t *testing.T) {
	uc, m, ctrl := setupDriverUC(t)
	defer ctrl.Finish()

	driverID := uuid.New()

	m.driverRepo.EXPECT().
		GetDriverByID(gomock.Any(), driverID).
		Return(&models.Driver{ID: driverID, IsApproved: true, IsAvailable: true}, nil)
	m.driverRepo.EXPECT().
		SetApproval(gomock.Any(), driverID, false).
		Return(nil)
	m.locationRepo.EXPECT().
		RemoveDriverLocation(gomock.Any(), driverID).
		Return(nil)

	driver, err := uc.SetApproval(context.Background(), driverID, false)

	require.NoError(t, err)
	assert.False(t, driver.IsApproved)
	assert.False(t, driver.IsAvailable)
}

func TestSetApproval_ApproveKeepsGeoIndexAlone(t *testing.T) {
	uc, m, ctrl := setupDriverUC(t)
	defer ctrl.Finish()

	driverID := uuid.New()

	m.driverRepo.EXPECT().
		GetDriverByID(gomock.Any(), driverID).
		Return(&models.Driver{ID: driverID, IsApproved: false}, nil)
	m.driverRepo.EXPECT().
		SetApproval(gomock.Any(), driverID, true).
		Return(nil)

	driver, err := uc.SetApproval(context.Background(), driverID, true)

	require.NoError(t, err)
	assert.True(t, driver.IsApproved)
}
