package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ridemate/ridemate/internal/pkg/middleware"
	"github.com/ridemate/ridemate/internal/pkg/models"
	"github.com/ridemate/ridemate/internal/utils"
	"github.com/ridemate/ridemate/services/users"
)

// UserHandler handles HTTP requests for user profile operations
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// GetMe returns the caller's own profile
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", user)
}

// UpdateMe updates the caller's own profile
func (h *UserHandler) UpdateMe(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", user)
}

// ListUsers returns a page of accounts. Admin only.
func (h *UserHandler) ListUsers(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	list, err := h.userUC.ListUsers(c.Request().Context(), limit, offset)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Users retrieved successfully", list)
}

type setBlockedRequest struct {
	Blocked bool `json:"blocked"`
}

// SetBlocked blocks or unblocks an account. Admin only.
func (h *UserHandler) SetBlocked(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	var req setBlockedRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.SetBlocked(c.Request().Context(), userID, req.Blocked)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Block status updated successfully", user)
}
