package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ridemate/ridemate/internal/pkg/middleware"
	"github.com/ridemate/ridemate/internal/pkg/models"
	"github.com/ridemate/ridemate/services/stats/handler/http"
)

// Handler coordinates the HTTP handlers for the stats service
type Handler struct {
	statsHandler *http.StatsHandler
	cfg          *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(statsHandler *http.StatsHandler, cfg *models.Config) *Handler {
	return &Handler{
		statsHandler: statsHandler,
		cfg:          cfg,
	}
}

// RegisterRoutes registers the stats service routes. All of them are
// admin only.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	statsGroup := e.Group("/admin/stats",
		middleware.JWTMiddleware(h.cfg.JWT),
		middleware.RequireRole(models.RoleAdmin))

	statsGroup.GET("", h.statsHandler.GetPlatformStats)
	statsGroup.GET("/users", h.statsHandler.GetUserStats)
	statsGroup.GET("/drivers", h.statsHandler.GetDriverStats)
	statsGroup.GET("/rides", h.statsHandler.GetRideStats)
}
