package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ridemate/ridemate/internal/pkg/logger"
	"github.com/ridemate/ridemate/internal/pkg/middleware"
	"github.com/ridemate/ridemate/internal/pkg/models"
	"github.com/ridemate/ridemate/internal/utils"
	"github.com/ridemate/ridemate/services/drivers"
)

// DriverHandler handles HTTP requests for driver operations
type DriverHandler struct {
	driverUC drivers.DriverUC
}

// NewDriverHandler creates a new driver handler
func NewDriverHandler(driverUC drivers.DriverUC) *DriverHandler {
	return &DriverHandler{driverUC: driverUC}
}

// Register handles driver registration requests
func (h *DriverHandler) Register(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.RegisterDriverRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for driver registration",
			logger.ErrorField(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	driver, err := h.driverUC.RegisterDriver(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Driver registered successfully", driver)
}

// GetMe returns the caller's driver profile
func (h *DriverHandler) GetMe(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	driver, err := h.driverUC.GetOwnDriver(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver retrieved successfully", driver)
}

type setAvailabilityRequest struct {
	Available bool `json:"available"`
}

// SetAvailability toggles the caller's availability for new rides
func (h *DriverHandler) SetAvailability(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req setAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	driver, err := h.driverUC.SetAvailability(c.Request().Context(), userID, req.Available)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Availability updated successfully", driver)
}

// UpdateLocation records the caller's current position
func (h *DriverHandler) UpdateLocation(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.driverUC.UpdateLocation(c.Request().Context(), userID, &req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated successfully", nil)
}

// Nearby returns available drivers around a point
func (h *DriverHandler) Nearby(c echo.Context) error {
	latitude, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid latitude")
	}
	longitude, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid longitude")
	}
	radiusKm, _ := strconv.ParseFloat(c.QueryParam("radius_km"), 64)

	location := models.Location{Latitude: latitude, Longitude: longitude}

	nearby, err := h.driverUC.NearbyDrivers(c.Request().Context(), location, radiusKm)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby drivers retrieved successfully", nearby)
}

// ListDrivers returns a page of driver profiles. Admin only.
func (h *DriverHandler) ListDrivers(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	list, err := h.driverUC.ListDrivers(c.Request().Context(), limit, offset)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Drivers retrieved successfully", list)
}

type setApprovalRequest struct {
	Approved bool `json:"approved"`
}

// SetApproval approves or revokes a driver. Admin only.
func (h *DriverHandler) SetApproval(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	var req setApprovalRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	driver, err := h.driverUC.SetApproval(c.Request().Context(), driverID, req.Approved)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Approval updated successfully", driver)
}

type setSuspensionRequest struct {
	Suspended bool `json:"suspended"`
}

// SetSuspension suspends or reinstates a driver. Admin only.
func (h *DriverHandler) SetSuspension(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	var req setSuspensionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	driver, err := h.driverUC.SetSuspension(c.Request().Context(), driverID, req.Suspended)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Suspension updated successfully", driver)
}
