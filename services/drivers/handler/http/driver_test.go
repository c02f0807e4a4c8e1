package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/ridemate/ridemate/internal/pkg/apperr"
	"github.com/ridemate/ridemate/internal/pkg/models"
	"github.com/ridemate/ridemate/services/drivers/mocks"
)

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDriverUC := mocks.NewMockDriverUC(ctrl)
	driverHandler := NewDriverHandler(mockDriverUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/drivers/register",
		strings.NewReader(`{"vehicle_type":"sedan","vehicle_plate":"DHK-1234"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	userID := uuid.New()
	c.Set("user_id", userID)
	c.Set("role", models.RoleRider)

	mockDriverUC.EXPECT().
		RegisterDriver(gomock.Any(), userID, gomock.Any()).
		Return(&models.Driver{ID: uuid.New(), UserID: userID, VehiclePlate: "DHK-1234"}, nil)

	err := driverHandler.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRegister_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDriverUC := mocks.NewMockDriverUC(ctrl)
	driverHandler := NewDriverHandler(mockDriverUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/drivers/register",
		strings.NewReader(`{"vehicle_type":"sedan","vehicle_plate":"DHK-1234"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uuid.New())

	mockDriverUC.EXPECT().
		RegisterDriver(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperr.Conflict("Driver profile already exists"))

	err := driverHandler.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestNearby_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDriverUC := mocks.NewMockDriverUC(ctrl)
	driverHandler := NewDriverHandler(mockDriverUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/drivers/nearby?latitude=23.81&longitude=90.41&radius_km=5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockDriverUC.EXPECT().
		NearbyDrivers(gomock.Any(), models.Location{Latitude: 23.81, Longitude: 90.41}, 5.0).
		Return([]models.NearbyDriver{
			{DriverID: uuid.New().String(), DistanceKm: 1.2},
		}, nil)

	err := driverHandler.Nearby(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].([]interface{})
	assert.Len(t, data, 1)
}

func TestNearby_MissingCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDriverUC := mocks.NewMockDriverUC(ctrl)
	driverHandler := NewDriverHandler(mockDriverUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/drivers/nearby", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := driverHandler.Nearby(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetAvailability_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDriverUC := mocks.NewMockDriverUC(ctrl)
	driverHandler := NewDriverHandler(mockDriverUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/drivers/me/availability",
		strings.NewReader(`{"available":true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	userID := uuid.New()
	c.Set("user_id", userID)
	c.Set("role", models.RoleDriver)

	mockDriverUC.EXPECT().
		SetAvailability(gomock.Any(), userID, true).
		Return(&models.Driver{ID: uuid.New(), UserID: userID, IsAvailable: true}, nil)

	err := driverHandler.SetAvailability(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
