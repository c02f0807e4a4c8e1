package drivers

import (
	"context"

	"github.com/google/uuid"
	"github.com/ridemate/ridemate/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ridemate/ridemate/services/drivers DriverUC

// DriverUC represents the driver usecase interface
type DriverUC interface {
	// driver-facing
	RegisterDriver(ctx context.Context, userID uuid.UUID, req *models.RegisterDriverRequest) (*models.Driver, error)
	GetOwnDriver(ctx context.Context, userID uuid.UUID) (*models.Driver, error)
	SetAvailability(ctx context.Context, userID uuid.UUID, available bool) (*models.Driver, error)
	UpdateLocation(ctx context.Context, userID uuid.UUID, req *models.UpdateLocationRequest) error

	// rider-facing
	NearbyDrivers(ctx context.Context, location models.Location, radiusKm float64) ([]models.NearbyDriver, error)

	// admin
	ListDrivers(ctx context.Context, limit, offset int) ([]*models.Driver, error)
	SetApproval(ctx context.Context, driverID uuid.UUID, approved bool) (*models.Driver, error)
	SetSuspension(ctx context.Context, driverID uuid.UUID, suspended bool) (*models.Driver, error)
}
