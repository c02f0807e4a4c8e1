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
	"github.com/stretchr/testify/require"

	"github.com/ridemate/ridemate/internal/pkg/apperr"
	"github.com/ridemate/ridemate/internal/pkg/models"
	"github.com/ridemate/ridemate/services/rides/mocks"
)

func setupRideHandler(t *testing.T) (*RideHandler, *mocks.MockRideUC, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockRideUC := mocks.NewMockRideUC(ctrl)
	return NewRideHandler(mockRideUC), mockRideUC, ctrl
}

func TestCreateRide_Success(t *testing.T) {
	rideHandler, mockRideUC, ctrl := setupRideHandler(t)
	defer ctrl.Finish()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/rides",
		strings.NewReader(`{"pickup":{"latitude":23.81,"longitude":90.41},"destination":{"latitude":23.78,"longitude":90.39}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	riderID := uuid.New()
	c.Set("user_id", riderID)
	c.Set("role", models.RoleRider)

	mockRideUC.EXPECT().
		CreateRide(gomock.Any(), riderID, gomock.Any()).
		Return(&models.Ride{
			ID:      uuid.New(),
			RiderID: riderID,
			Status:  models.RideStatusRequested,
			Fare:    128.2,
		}, nil)

	err := rideHandler.CreateRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "REQUESTED", data["status"])
	assert.Equal(t, 128.2, data["fare"])
}

func TestCreateRide_NoDriversNearby(t *testing.T) {
	rideHandler, mockRideUC, ctrl := setupRideHandler(t)
	defer ctrl.Finish()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/rides",
		strings.NewReader(`{"pickup":{"latitude":23.81,"longitude":90.41},"destination":{"latitude":23.78,"longitude":90.39}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uuid.New())

	mockRideUC.EXPECT().
		CreateRide(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperr.NotFound("No available drivers nearby"))

	err := rideHandler.CreateRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateRide_MissingIdentity(t *testing.T) {
	rideHandler, _, ctrl := setupRideHandler(t)
	defer ctrl.Finish()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/rides", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := rideHandler.CreateRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAcceptRide_Success(t *testing.T) {
	rideHandler, mockRideUC, ctrl := setupRideHandler(t)
	defer ctrl.Finish()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	callerID := uuid.New()
	rideID := uuid.New()
	c.Set("user_id", callerID)
	c.Set("role", models.RoleDriver)
	c.SetPath("/rides/:id/accept")
	c.SetParamNames("id")
	c.SetParamValues(rideID.String())

	mockRideUC.EXPECT().
		AcceptRide(gomock.Any(), callerID, rideID).
		Return(&models.Ride{ID: rideID, Status: models.RideStatusAccepted}, nil)

	err := rideHandler.AcceptRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAcceptRide_InvalidID(t *testing.T) {
	rideHandler, _, ctrl := setupRideHandler(t)
	defer ctrl.Finish()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uuid.New())
	c.SetPath("/rides/:id/accept")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := rideHandler.AcceptRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAcceptRide_StaleStatus(t *testing.T) {
	rideHandler, mockRideUC, ctrl := setupRideHandler(t)
	defer ctrl.Finish()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	rideID := uuid.New()
	c.Set("user_id", uuid.New())
	c.SetPath("/rides/:id/accept")
	c.SetParamNames("id")
	c.SetParamValues(rideID.String())

	mockRideUC.EXPECT().
		AcceptRide(gomock.Any(), gomock.Any(), rideID).
		Return(nil, apperr.BadRequest("Ride is in status CANCELLED, expected REQUESTED"))

	err := rideHandler.AcceptRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelRide_PassesCallerRole(t *testing.T) {
	rideHandler, mockRideUC, ctrl := setupRideHandler(t)
	defer ctrl.Finish()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	callerID := uuid.New()
	rideID := uuid.New()
	c.Set("user_id", callerID)
	c.Set("role", models.RoleDriver)
	c.SetPath("/rides/:id/cancel")
	c.SetParamNames("id")
	c.SetParamValues(rideID.String())

	mockRideUC.EXPECT().
		CancelRide(gomock.Any(), callerID, models.RoleDriver, rideID).
		Return(&models.Ride{ID: rideID, Status: models.RideStatusCancelled}, nil)

	err := rideHandler.CancelRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCancelRide_Stranger(t *testing.T) {
	rideHandler, mockRideUC, ctrl := setupRideHandler(t)
	defer ctrl.Finish()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	rideID := uuid.New()
	c.Set("user_id", uuid.New())
	c.Set("role", models.RoleRider)
	c.SetPath("/rides/:id/cancel")
	c.SetParamNames("id")
	c.SetParamValues(rideID.String())

	mockRideUC.EXPECT().
		CancelRide(gomock.Any(), gomock.Any(), models.RoleRider, rideID).
		Return(nil, apperr.Forbidden("Not a participant of this ride"))

	err := rideHandler.CancelRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetRide_Success(t *testing.T) {
	rideHandler, mockRideUC, ctrl := setupRideHandler(t)
	defer ctrl.Finish()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	callerID := uuid.New()
	rideID := uuid.New()
	c.Set("user_id", callerID)
	c.Set("role", models.RoleRider)
	c.SetPath("/rides/:id")
	c.SetParamNames("id")
	c.SetParamValues(rideID.String())

	mockRideUC.EXPECT().
		GetRide(gomock.Any(), callerID, models.RoleRider, rideID).
		Return(&models.Ride{ID: rideID, RiderID: callerID}, nil)

	err := rideHandler.GetRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListOwnRides_PassesPaging(t *testing.T) {
	rideHandler, mockRideUC, ctrl := setupRideHandler(t)
	defer ctrl.Finish()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/rides?limit=5&offset=10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	callerID := uuid.New()
	c.Set("user_id", callerID)
	c.Set("role", models.RoleRider)

	mockRideUC.EXPECT().
		ListOwnRides(gomock.Any(), callerID, models.RoleRider, 5, 10).
		Return([]*models.Ride{}, nil)

	err := rideHandler.ListOwnRides(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListAllRides_Success(t *testing.T) {
	rideHandler, mockRideUC, ctrl := setupRideHandler(t)
	defer ctrl.Finish()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/rides", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockRideUC.EXPECT().
		ListAllRides(gomock.Any(), 0, 0).
		Return([]*models.Ride{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	err := rideHandler.ListAllRides(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].([]interface{})
	assert.Len(t, data, 2)
}
