package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ridemate/ridemate/internal/pkg/logger"
	"github.com/ridemate/ridemate/internal/pkg/middleware"
	"github.com/ridemate/ridemate/internal/pkg/models"
	"github.com/ridemate/ridemate/internal/utils"
	"github.com/ridemate/ridemate/services/rides"
)

// RideHandler handles HTTP requests for ride operations
type RideHandler struct {
	rideUC rides.RideUC
}

// NewRideHandler creates a new ride handler
func NewRideHandler(rideUC rides.RideUC) *RideHandler {
	return &RideHandler{rideUC: rideUC}
}

// CreateRide handles ride requests from riders
func (h *RideHandler) CreateRide(c echo.Context) error {
	riderID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateRideRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for ride creation",
			logger.ErrorField(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	ride, err := h.rideUC.CreateRide(c.Request().Context(), riderID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride requested successfully", ride)
}

// AcceptRide handles the assigned driver accepting a ride
func (h *RideHandler) AcceptRide(c echo.Context) error {
	return h.transition(c, h.rideUC.AcceptRide, "Ride accepted successfully")
}

// PickupRide handles the driver confirming the rider was picked up
func (h *RideHandler) PickupRide(c echo.Context) error {
	return h.transition(c, h.rideUC.PickupRide, "Ride picked up successfully")
}

// StartTransit handles the driver starting the trip
func (h *RideHandler) StartTransit(c echo.Context) error {
	return h.transition(c, h.rideUC.StartTransit, "Ride in transit")
}

// CompleteRide handles the driver completing the trip
func (h *RideHandler) CompleteRide(c echo.Context) error {
	return h.transition(c, h.rideUC.CompleteRide, "Ride completed successfully")
}

// CancelRide handles cancellation by the rider or the assigned driver
func (h *RideHandler) CancelRide(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	rideID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	ride, err := h.rideUC.CancelRide(c.Request().Context(), callerID, middleware.CallerRole(c), rideID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride cancelled successfully", ride)
}

// GetRide returns a single ride for its participants or an admin
func (h *RideHandler) GetRide(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	rideID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	ride, err := h.rideUC.GetRide(c.Request().Context(), callerID, middleware.CallerRole(c), rideID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride retrieved successfully", ride)
}

// ListOwnRides returns the caller's ride history
func (h *RideHandler) ListOwnRides(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	list, err := h.rideUC.ListOwnRides(c.Request().Context(), callerID, middleware.CallerRole(c), limit, offset)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rides retrieved successfully", list)
}

// ListAllRides returns a page across all rides. Admin only.
func (h *RideHandler) ListAllRides(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	list, err := h.rideUC.ListAllRides(c.Request().Context(), limit, offset)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rides retrieved successfully", list)
}

func (h *RideHandler) transition(
	c echo.Context,
	op func(ctx context.Context, callerID, rideID uuid.UUID) (*models.Ride, error),
	message string,
) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	rideID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	ride, err := op(c.Request().Context(), callerID, rideID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, message, ride)
}
