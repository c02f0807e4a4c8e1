package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridemate/ridemate/internal/pkg/apperr"
	"github.com/ridemate/ridemate/internal/pkg/models"
	"github.com/ridemate/ridemate/services/stats/mocks"
)

func TestGetPlatformStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStatsUC := mocks.NewMockStatsUC(ctrl)
	statsHandler := NewStatsHandler(mockStatsUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockStatsUC.EXPECT().
		GetPlatformStats(gomock.Any()).
		Return(&models.PlatformStats{
			Users: models.UserStats{TotalUsers: 120},
			Rides: models.RideStats{TotalRevenue: 52345.80},
		}, nil)

	err := statsHandler.GetPlatformStats(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	users := data["users"].(map[string]interface{})
	assert.Equal(t, float64(120), users["total_users"])
}

func TestGetRideStats_InternalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStatsUC := mocks.NewMockStatsUC(ctrl)
	statsHandler := NewStatsHandler(mockStatsUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/stats/rides", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockStatsUC.EXPECT().
		GetRideStats(gomock.Any()).
		Return(nil, apperr.Internal("failed to load ride stats", errors.New("timeout")))

	err := statsHandler.GetRideStats(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
