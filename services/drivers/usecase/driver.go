package usecase

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/ridemate/ridemate/internal/pkg/apperr"
	"github.com/ridemate/ridemate/internal/pkg/logger"
	"github.com/ridemate/ridemate/internal/pkg/models"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// RegisterDriver creates a driver profile for an existing user account.
// The profile starts unapproved; an admin has to approve it before the
// driver can take rides.
func (u *DriverUC) RegisterDriver(ctx context.Context, userID uuid.UUID, req *models.RegisterDriverRequest) (*models.Driver, error) {
	var reasons []string
	if strings.TrimSpace(req.VehicleType) == "" {
		reasons = append(reasons, "vehicle type is required")
	}
	if strings.TrimSpace(req.VehiclePlate) == "" {
		reasons = append(reasons, "vehicle plate is required")
	}
	if len(reasons) > 0 {
		return nil, apperr.BadRequest("Invalid driver registration", reasons...)
	}

	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal("failed to get user", err)
	}
	if user.IsBlocked {
		return nil, apperr.Forbidden("Account is blocked")
	}

	existing, err := u.driverRepo.GetDriverByUserID(ctx, userID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.Internal("failed to check existing driver", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("Driver profile already exists")
	}

	driver := &models.Driver{
		UserID:       userID,
		VehicleType:  strings.TrimSpace(req.VehicleType),
		VehiclePlate: strings.ToUpper(strings.TrimSpace(req.VehiclePlate)),
	}

	if err := u.driverRepo.CreateDriver(ctx, driver); err != nil {
		return nil, apperr.Internal("failed to create driver", err)
	}

	logger.Info("Driver registered",
		logger.String("driver_id", driver.ID.String()),
		logger.String("user_id", userID.String()))

	return driver, nil
}

// GetOwnDriver returns the caller's driver profile
func (u *DriverUC) GetOwnDriver(ctx context.Context, userID uuid.UUID) (*models.Driver, error) {
	driver, err := u.driverRepo.GetDriverByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("Driver profile not found")
		}
		return nil, apperr.Internal("failed to get driver", err)
	}
	return driver, nil
}

// SetAvailability toggles whether the driver is open for new rides
func (u *DriverUC) SetAvailability(ctx context.Context, userID uuid.UUID, available bool) (*models.Driver, error) {
	driver, err := u.driverRepo.GetDriverByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("Driver profile not found")
		}
		return nil, apperr.Internal("failed to get driver", err)
	}

	if available {
		if !driver.IsApproved {
			return nil, apperr.BadRequest("Driver is not approved")
		}
		if driver.IsSuspended {
			return nil, apperr.Forbidden("Driver is suspended")
		}
	}

	if driver.IsAvailable != available {
		if err := u.driverRepo.SetAvailability(ctx, driver.ID, available); err != nil {
			return nil, apperr.Internal("failed to update availability", err)
		}
		driver.IsAvailable = available
	}

	// Keep the geo index in sync so unavailable drivers stop showing up
	// in nearby queries.
	if available && driver.Location != nil {
		if err := u.locationRepo.AddDriverLocation(ctx, driver.ID, *driver.Location); err != nil {
			logger.Warn("Failed to add driver to geo index",
				logger.ErrorField(err),
				logger.String("driver_id", driver.ID.String()))
		}
	}
	if !available {
		if err := u.locationRepo.RemoveDriverLocation(ctx, driver.ID); err != nil {
			logger.Warn("Failed to remove driver from geo index",
				logger.ErrorField(err),
				logger.String("driver_id", driver.ID.String()))
		}
	}

	return driver, nil
}

// UpdateLocation records the driver's current position
func (u *DriverUC) UpdateLocation(ctx context.Context, userID uuid.UUID, req *models.UpdateLocationRequest) error {
	if err := validateCoordinates(req.Latitude, req.Longitude); err != nil {
		return err
	}

	driver, err := u.driverRepo.GetDriverByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("Driver profile not found")
		}
		return apperr.Internal("failed to get driver", err)
	}

	location := models.Location{Latitude: req.Latitude, Longitude: req.Longitude}

	if err := u.driverRepo.UpdateLocation(ctx, driver.ID, location); err != nil {
		return apperr.Internal("failed to update location", err)
	}

	if driver.IsApproved && !driver.IsSuspended && driver.IsAvailable {
		if err := u.locationRepo.AddDriverLocation(ctx, driver.ID, location); err != nil {
			logger.Warn("Failed to update driver geo index",
				logger.ErrorField(err),
				logger.String("driver_id", driver.ID.String()))
		}
	}

	return nil
}

// NearbyDrivers returns available drivers around a point, nearest first
func (u *DriverUC) NearbyDrivers(ctx context.Context, location models.Location, radiusKm float64) ([]models.NearbyDriver, error) {
	if err := validateCoordinates(location.Latitude, location.Longitude); err != nil {
		return nil, err
	}

	if radiusKm <= 0 {
		radiusKm = u.cfg.Match.MaxRadiusKm
	}

	nearby, err := u.locationRepo.NearbyDrivers(ctx, location, radiusKm)
	if err != nil {
		return nil, apperr.Internal("failed to query nearby drivers", err)
	}

	return nearby, nil
}

// ListDrivers returns a page of driver profiles. Admin only.
func (u *DriverUC) ListDrivers(ctx context.Context, limit, offset int) ([]*models.Driver, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	list, err := u.driverRepo.ListDrivers(ctx, limit, offset)
	if err != nil {
		return nil, apperr.Internal("failed to list drivers", err)
	}
	return list, nil
}

// SetApproval approves or revokes a driver. Approval promotes the backing
// user account to the driver role.
func (u *DriverUC) SetApproval(ctx context.Context, driverID uuid.UUID, approved bool) (*models.Driver, error) {
	driver, err := u.driverRepo.GetDriverByID(ctx, driverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("Driver not found")
		}
		return nil, apperr.Internal("failed to get driver", err)
	}

	if driver.IsApproved != approved {
		if err := u.driverRepo.SetApproval(ctx, driverID, approved); err != nil {
			return nil, apperr.Internal("failed to update approval", err)
		}
		driver.IsApproved = approved
		if !approved {
			driver.IsAvailable = false
			if err := u.locationRepo.RemoveDriverLocation(ctx, driverID); err != nil {
				logger.Warn("Failed to remove unapproved driver from geo index",
					logger.ErrorField(err),
					logger.String("driver_id", driverID.String()))
			}
		}
	}

	logger.Info("Driver approval changed",
		logger.String("driver_id", driverID.String()),
		logger.Bool("approved", approved))

	return driver, nil
}

// SetSuspension suspends or reinstates a driver. Suspension also clears
// availability so the driver drops out of matching.
func (u *DriverUC) SetSuspension(ctx context.Context, driverID uuid.UUID, suspended bool) (*models.Driver, error) {
	driver, err := u.driverRepo.GetDriverByID(ctx, driverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("Driver not found")
		}
		return nil, apperr.Internal("failed to get driver", err)
	}

	if driver.IsSuspended != suspended {
		if err := u.driverRepo.SetSuspension(ctx, driverID, suspended); err != nil {
			return nil, apperr.Internal("failed to update suspension", err)
		}
		driver.IsSuspended = suspended
		if suspended {
			driver.IsAvailable = false
			if err := u.locationRepo.RemoveDriverLocation(ctx, driverID); err != nil {
				logger.Warn("Failed to remove suspended driver from geo index",
					logger.ErrorField(err),
					logger.String("driver_id", driverID.String()))
			}
		}
	}

	logger.Info("Driver suspension changed",
		logger.String("driver_id", driverID.String()),
		logger.Bool("suspended", suspended))

	return driver, nil
}

func validateCoordinates(latitude, longitude float64) error {
	var reasons []string
	if latitude < -90 || latitude > 90 {
		reasons = append(reasons, "latitude must be between -90 and 90")
	}
	if longitude < -180 || longitude > 180 {
		reasons = append(reasons, "longitude must be between -180 and 180")
	}
	if len(reasons) > 0 {
		return apperr.BadRequest("Invalid coordinates", reasons...)
	}
	return nil
}
