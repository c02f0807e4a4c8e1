package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ridemate/ridemate/internal/pkg/logger"
	"github.com/ridemate/ridemate/internal/pkg/models"
	"github.com/ridemate/ridemate/internal/utils"
	"github.com/ridemate/ridemate/services/users"
)

// AuthHandler handles HTTP requests for registration and login
type AuthHandler struct {
	userUC users.UserUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUC users.UserUC) *AuthHandler {
	return &AuthHandler{userUC: userUC}
}

// Register handles account registration requests
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for registration",
			logger.ErrorField(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.Register(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", resp)
}

// Login handles credential login requests
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}
