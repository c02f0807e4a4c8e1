package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ridemate/ridemate/internal/pkg/middleware"
	"github.com/ridemate/ridemate/internal/pkg/models"
	"github.com/ridemate/ridemate/services/users/handler/http"
)

// Handler coordinates the HTTP handlers for the user service
type Handler struct {
	authHandler *http.AuthHandler
	userHandler *http.UserHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	userHandler *http.UserHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler: authHandler,
		userHandler: userHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the user service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes
	authGroup := e.Group("/auth")
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/login", h.authHandler.Login)

	// Authenticated routes
	protected := e.Group("", middleware.JWTMiddleware(h.cfg.JWT))

	userGroup := protected.Group("/users")
	userGroup.GET("/me", h.userHandler.GetMe)
	userGroup.PUT("/me", h.userHandler.UpdateMe)

	// Admin routes
	adminGroup := protected.Group("/admin/users", middleware.RequireRole(models.RoleAdmin))
	adminGroup.GET("", h.userHandler.ListUsers)
	adminGroup.PUT("/:id/block", h.userHandler.SetBlocked)
}
