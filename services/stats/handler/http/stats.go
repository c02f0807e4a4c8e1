package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ridemate/ridemate/internal/utils"
	"github.com/ridemate/ridemate/services/stats"
)

// StatsHandler handles HTTP requests for the admin dashboard aggregates
type StatsHandler struct {
	statsUC stats.StatsUC
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsUC stats.StatsUC) *StatsHandler {
	return &StatsHandler{statsUC: statsUC}
}

// GetPlatformStats returns the combined dashboard view
func (h *StatsHandler) GetPlatformStats(c echo.Context) error {
	platformStats, err := h.statsUC.GetPlatformStats(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Platform stats retrieved successfully", platformStats)
}

// GetUserStats returns account aggregates
func (h *StatsHandler) GetUserStats(c echo.Context) error {
	userStats, err := h.statsUC.GetUserStats(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "User stats retrieved successfully", userStats)
}

// GetDriverStats returns driver profile aggregates
func (h *StatsHandler) GetDriverStats(c echo.Context) error {
	driverStats, err := h.statsUC.GetDriverStats(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver stats retrieved successfully", driverStats)
}

// GetRideStats returns ride aggregates
func (h *StatsHandler) GetRideStats(c echo.Context) error {
	rideStats, err := h.statsUC.GetRideStats(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride stats retrieved successfully", rideStats)
}
