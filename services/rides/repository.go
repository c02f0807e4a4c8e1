package rides

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ridemate/ridemate/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ridemate/ridemate/services/rides RideRepo,DriverFinder

// RideRepo defines the interface for ride data access operations.
//
// Transition methods are conditional updates: they only apply when the ride
// is still in the expected predecessor status, and report whether the swap
// happened. A false return with a nil error means the precondition no
// longer held, and the caller re-reads the ride to classify the failure.
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) error
	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)

	AcceptRide(ctx context.Context, rideID, driverID uuid.UUID, at time.Time) (bool, error)
	CancelRide(ctx context.Context, rideID, cancelledBy uuid.UUID, canceller string, at time.Time) (bool, error)
	MarkPickedUp(ctx context.Context, rideID uuid.UUID, at time.Time) (bool, error)
	MarkInTransit(ctx context.Context, rideID uuid.UUID, at time.Time) (bool, error)
	CompleteRide(ctx context.Context, rideID, driverID uuid.UUID, at time.Time) (bool, error)

	HasActiveRide(ctx context.Context, riderID uuid.UUID) (bool, error)
	ListRidesByRider(ctx context.Context, riderID uuid.UUID, limit, offset int) ([]*models.Ride, error)
	ListRidesByDriver(ctx context.Context, driverID uuid.UUID, limit, offset int) ([]*models.Ride, error)
	ListRides(ctx context.Context, limit, offset int) ([]*models.Ride, error)
}

// DriverFinder supplies the driver data the matcher and the lifecycle
// authorization checks need.
type DriverFinder interface {
	EligibleDrivers(ctx context.Context) ([]*models.Driver, error)
	GetDriverByUserID(ctx context.Context, userID uuid.UUID) (*models.Driver, error)
}
