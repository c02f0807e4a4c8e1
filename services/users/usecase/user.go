package usecase

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/ridemate/ridemate/internal/pkg/apperr"
	"github.com/ridemate/ridemate/internal/pkg/logger"
	"github.com/ridemate/ridemate/internal/pkg/models"
	"github.com/ridemate/ridemate/internal/utils"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// GetProfile retrieves a user's own profile
func (u *UserUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal("failed to get user", err)
	}
	return user, nil
}

// UpdateProfile updates the caller's display name and phone number
func (u *UserUC) UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest) (*models.User, error) {
	var reasons []string
	if strings.TrimSpace(req.FullName) == "" {
		reasons = append(reasons, "full name is required")
	}
	if req.Phone != "" && !utils.IsValidPhoneNumber(req.Phone) {
		reasons = append(reasons, "invalid phone number")
	}
	if len(reasons) > 0 {
		return nil, apperr.BadRequest("Invalid profile update", reasons...)
	}

	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal("failed to get user", err)
	}

	user.FullName = strings.TrimSpace(req.FullName)
	user.Phone = req.Phone

	if err := u.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, apperr.Internal("failed to update profile", err)
	}

	return user, nil
}

// ListUsers returns a page of accounts, newest first. Admin only.
func (u *UserUC) ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	users, err := u.userRepo.ListUsers(ctx, limit, offset)
	if err != nil {
		return nil, apperr.Internal("failed to list users", err)
	}
	return users, nil
}

// SetBlocked blocks or unblocks an account. Admin only.
func (u *UserUC) SetBlocked(ctx context.Context, userID uuid.UUID, blocked bool) (*models.User, error) {
	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal("failed to get user", err)
	}

	if user.IsBlocked == blocked {
		return user, nil
	}

	if err := u.userRepo.SetBlocked(ctx, userID, blocked); err != nil {
		return nil, apperr.Internal("failed to update block status", err)
	}
	user.IsBlocked = blocked

	logger.Info("User block status changed",
		logger.String("user_id", userID.String()),
		logger.Bool("blocked", blocked))

	return user, nil
}
