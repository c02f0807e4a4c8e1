package users

import (
	"context"

	"github.com/google/uuid"
	"github.com/ridemate/ridemate/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ridemate/ridemate/services/users UserUC

// UserUC represents the user usecase interface
type UserUC interface {
	// authentication
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)

	// profile
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest) (*models.User, error)

	// admin
	ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error)
	SetBlocked(ctx context.Context, userID uuid.UUID, blocked bool) (*models.User, error)
}
