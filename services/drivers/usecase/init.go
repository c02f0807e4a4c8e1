package usecase

import (
	"github.com/ridemate/ridemate/internal/pkg/models"
	"github.com/ridemate/ridemate/services/drivers"
	"github.com/ridemate/ridemate/services/users"
)

type DriverUC struct {
	driverRepo   drivers.DriverRepo
	locationRepo drivers.LocationRepo
	userRepo     users.UserRepo
	cfg          *models.Config
}

// NewDriverUC creates a new driver usecase instance
func NewDriverUC(
	driverRepo drivers.DriverRepo,
	locationRepo drivers.LocationRepo,
	userRepo users.UserRepo,
	cfg *models.Config,
) *DriverUC {
	return &DriverUC{
		driverRepo:   driverRepo,
		locationRepo: locationRepo,
		userRepo:     userRepo,
		cfg:          cfg,
	}
}
