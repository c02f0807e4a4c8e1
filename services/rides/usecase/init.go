package usecase

import (
	"github.com/ridemate/ridemate/internal/pkg/models"
	"github.com/ridemate/ridemate/services/rides"
)

type RideUC struct {
	rideRepo     rides.RideRepo
	driverFinder rides.DriverFinder
	rideGW       rides.RideGW
	cfg          *models.Config
}

// NewRideUC creates a new ride usecase instance
func NewRideUC(
	rideRepo rides.RideRepo,
	driverFinder rides.DriverFinder,
	rideGW rides.RideGW,
	cfg *models.Config,
) *RideUC {
	return &RideUC{
		rideRepo:     rideRepo,
		driverFinder: driverFinder,
		rideGW:       rideGW,
		cfg:          cfg,
	}
}
