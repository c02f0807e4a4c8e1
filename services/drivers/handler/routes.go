package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ridemate/ridemate/internal/pkg/middleware"
	"github.com/ridemate/ridemate/internal/pkg/models"
	"github.com/ridemate/ridemate/services/drivers/handler/http"
)

// Handler coordinates the HTTP handlers for the driver service
type Handler struct {
	driverHandler *http.DriverHandler
	cfg           *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(driverHandler *http.DriverHandler, cfg *models.Config) *Handler {
	return &Handler{
		driverHandler: driverHandler,
		cfg:           cfg,
	}
}

// RegisterRoutes registers the driver service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("", middleware.JWTMiddleware(h.cfg.JWT))

	driverGroup := protected.Group("/drivers")
	driverGroup.POST("/register", h.driverHandler.Register)
	driverGroup.GET("/me", h.driverHandler.GetMe)
	driverGroup.GET("/nearby", h.driverHandler.Nearby)

	// Driver-only routes
	driverGroup.PUT("/me/availability", h.driverHandler.SetAvailability,
		middleware.RequireRole(models.RoleDriver))
	driverGroup.PUT("/me/location", h.driverHandler.UpdateLocation,
		middleware.RequireRole(models.RoleDriver))

	// Admin routes
	adminGroup := protected.Group("/admin/drivers", middleware.RequireRole(models.RoleAdmin))
	adminGroup.GET("", h.driverHandler.ListDrivers)
	adminGroup.PUT("/:id/approval", h.driverHandler.SetApproval)
	adminGroup.PUT("/:id/suspension", h.driverHandler.SetSuspension)
}
