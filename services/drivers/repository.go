package drivers

import (
	"context"

	"github.com/google/uuid"
	"github.com/ridemate/ridemate/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ridemate/ridemate/services/drivers DriverRepo,LocationRepo

// DriverRepo defines the interface for driver data access operations
type DriverRepo interface {
	CreateDriver(ctx context.Context, driver *models.Driver) error
	GetDriverByID(ctx context.Context, id uuid.UUID) (*models.Driver, error)
	GetDriverByUserID(ctx context.Context, userID uuid.UUID) (*models.Driver, error)
	ListDrivers(ctx context.Context, limit, offset int) ([]*models.Driver, error)
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
	SetApproval(ctx context.Context, id uuid.UUID, approved bool) error
	SetSuspension(ctx context.Context, id uuid.UUID, suspended bool) error
	UpdateLocation(ctx context.Context, id uuid.UUID, location models.Location) error
}

// LocationRepo maintains the geospatial index of available drivers
type LocationRepo interface {
	AddDriverLocation(ctx context.Context, driverID uuid.UUID, location models.Location) error
	RemoveDriverLocation(ctx context.Context, driverID uuid.UUID) error
	NearbyDrivers(ctx context.Context, location models.Location, radiusKm float64) ([]models.NearbyDriver, error)
}
