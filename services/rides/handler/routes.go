package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ridemate/ridemate/internal/pkg/middleware"
	"github.com/ridemate/ridemate/internal/pkg/models"
	"github.com/ridemate/ridemate/services/rides/handler/http"
)

// Handler coordinates the HTTP handlers for the ride service
type Handler struct {
	rideHandler *http.RideHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(rideHandler *http.RideHandler, cfg *models.Config) *Handler {
	return &Handler{
		rideHandler: rideHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the ride service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("", middleware.JWTMiddleware(h.cfg.JWT))

	rideGroup := protected.Group("/rides")
	rideGroup.POST("", h.rideHandler.CreateRide, middleware.RequireRole(models.RoleRider, models.RoleAdmin))
	rideGroup.GET("", h.rideHandler.ListOwnRides)
	rideGroup.GET("/:id", h.rideHandler.GetRide)
	rideGroup.PUT("/:id/cancel", h.rideHandler.CancelRide)

	// Driver-only lifecycle transitions
	driverOnly := middleware.RequireRole(models.RoleDriver)
	rideGroup.PUT("/:id/accept", h.rideHandler.AcceptRide, driverOnly)
	rideGroup.PUT("/:id/pickup", h.rideHandler.PickupRide, driverOnly)
	rideGroup.PUT("/:id/transit", h.rideHandler.StartTransit, driverOnly)
	rideGroup.PUT("/:id/complete", h.rideHandler.CompleteRide, driverOnly)

	// Admin routes
	adminGroup := protected.Group("/admin/rides", middleware.RequireRole(models.RoleAdmin))
	adminGroup.GET("", h.rideHandler.ListAllRides)
}
