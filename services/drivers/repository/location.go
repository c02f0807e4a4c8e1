package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ridemate/ridemate/internal/pkg/constants"
	"github.com/ridemate/ridemate/internal/pkg/database"
	"github.com/ridemate/ridemate/internal/pkg/models"
	"github.com/ridemate/ridemate/internal/utils"
)

// lastLocationTTL bounds how long a stale last-known position is kept
const lastLocationTTL = 24 * time.Hour

// geohashPrecision gives roughly 5 meter cells
const geohashPrecision = 9

// LocationRepo maintains the available-driver geo index in Redis
type LocationRepo struct {
	cache *database.RedisClient
}

// NewLocationRepo creates a new location repository
func NewLocationRepo(cache *database.RedisClient) *LocationRepo {
	return &LocationRepo{cache: cache}
}

// AddDriverLocation upserts a driver into the geo index and records the
// geohash of its last known position.
func (r *LocationRepo) AddDriverLocation(ctx context.Context, driverID uuid.UUID, location models.Location) error {
	if err := r.cache.GeoAdd(ctx, constants.KeyDriverGeo, location.Longitude, location.Latitude, driverID.String()); err != nil {
		return fmt.Errorf("failed to add driver to geo index: %w", err)
	}

	key := fmt.Sprintf(constants.KeyDriverLocation, driverID)
	if err := r.cache.Set(ctx, key, utils.EncodeLocation(location, geohashPrecision), lastLocationTTL); err != nil {
		return fmt.Errorf("failed to store driver location: %w", err)
	}

	return nil
}

// RemoveDriverLocation drops a driver from the geo index
func (r *LocationRepo) RemoveDriverLocation(ctx context.Context, driverID uuid.UUID) error {
	if err := r.cache.GeoRemove(ctx, constants.KeyDriverGeo, driverID.String()); err != nil {
		return fmt.Errorf("failed to remove driver from geo index: %w", err)
	}

	key := fmt.Sprintf(constants.KeyDriverLocation, driverID)
	if err := r.cache.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete driver location: %w", err)
	}

	return nil
}

// NearbyDrivers returns drivers within radiusKm of a point, nearest first
func (r *LocationRepo) NearbyDrivers(ctx context.Context, location models.Location, radiusKm float64) ([]models.NearbyDriver, error) {
	results, err := r.cache.GeoRadius(ctx, constants.KeyDriverGeo, location.Longitude, location.Latitude, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to query geo index: %w", err)
	}

	nearby := make([]models.NearbyDriver, 0, len(results))
	for _, result := range results {
		nearby = append(nearby, models.NearbyDriver{
			DriverID: result.Name,
			Location: models.Location{
				Latitude:  result.Latitude,
				Longitude: result.Longitude,
			},
			DistanceKm: result.Dist,
		})
	}

	return nearby, nil
}
