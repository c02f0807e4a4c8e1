package usecase

import (
	"github.com/ridemate/ridemate/internal/pkg/models"
	"github.com/ridemate/ridemate/services/users"
)

type UserUC struct {
	userRepo users.UserRepo
	cfg      *models.Config
}

// NewUserUC creates a new user usecase instance
func NewUserUC(
	userRepo users.UserRepo,
	cfg *models.Config,
) *UserUC {
	return &UserUC{
		userRepo: userRepo,
		cfg:      cfg,
	}
}
