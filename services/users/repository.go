package users

import (
	"context"

	"github.com/google/uuid"
	"github.com/ridemate/ridemate/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ridemate/ridemate/services/users UserRepo

// UserRepo defines the interface for user data access operations
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error)
	SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error
}
