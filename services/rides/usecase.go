package rides

import (
	"context"

	"github.com/google/uuid"
	"github.com/ridemate/ridemate/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ridemate/ridemate/services/rides RideUC

// RideUC represents the ride usecase interface. Lifecycle operations take
// the caller's identity from the JWT claims and enforce both the state
// machine and the caller's relationship to the ride.
type RideUC interface {
	CreateRide(ctx context.Context, riderID uuid.UUID, req *models.CreateRideRequest) (*models.Ride, error)
	AcceptRide(ctx context.Context, callerID uuid.UUID, rideID uuid.UUID) (*models.Ride, error)
	CancelRide(ctx context.Context, callerID uuid.UUID, role string, rideID uuid.UUID) (*models.Ride, error)
	PickupRide(ctx context.Context, callerID uuid.UUID, rideID uuid.UUID) (*models.Ride, error)
	StartTransit(ctx context.Context, callerID uuid.UUID, rideID uuid.UUID) (*models.Ride, error)
	CompleteRide(ctx context.Context, callerID uuid.UUID, rideID uuid.UUID) (*models.Ride, error)

	GetRide(ctx context.Context, callerID uuid.UUID, role string, rideID uuid.UUID) (*models.Ride, error)
	ListOwnRides(ctx context.Context, callerID uuid.UUID, role string, limit, offset int) ([]*models.Ride, error)
	ListAllRides(ctx context.Context, limit, offset int) ([]*models.Ride, error)
}
