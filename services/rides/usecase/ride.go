package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ridemate/ridemate/internal/pkg/apperr"
	"github.com/ridemate/ridemate/internal/pkg/constants"
	"github.com/ridemate/ridemate/internal/pkg/logger"
	"github.com/ridemate/ridemate/internal/pkg/models"
	"github.com/ridemate/ridemate/internal/pkg/observability"
	"github.com/ridemate/ridemate/internal/utils"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

const (
	cancellerRider  = "rider"
	cancellerDriver = "driver"
)

// CreateRide requests a new ride. The nearest eligible driver is assigned
// and the fare fixed at creation time; both stay immutable for the life of
// the ride.
func (u *RideUC) CreateRide(ctx context.Context, riderID uuid.UUID, req *models.CreateRideRequest) (*models.Ride, error) {
	if err := validateRideRequest(req); err != nil {
		return nil, err
	}

	active, err := u.rideRepo.HasActiveRide(ctx, riderID)
	if err != nil {
		return nil, apperr.Internal("failed to check active rides", err)
	}
	if active {
		return nil, apperr.Conflict("Rider already has an active ride")
	}

	driver, pickupDist, err := u.matchDriver(ctx, *req.Pickup)
	if err != nil {
		return nil, err
	}

	distanceKm := utils.DistanceKm(*req.Pickup, *req.Destination)

	ride := &models.Ride{
		RiderID:     riderID,
		DriverID:    driver.ID,
		Pickup:      *req.Pickup,
		Destination: *req.Destination,
		Status:      models.RideStatusRequested,
		Fare:        u.calculateFare(distanceKm),
		DistanceKm:  distanceKm,
		RequestedAt: models.Now(),
	}

	if err := u.rideRepo.CreateRide(ctx, ride); err != nil {
		return nil, apperr.Internal("failed to create ride", err)
	}

	logger.Info("Ride requested",
		logger.String("ride_id", ride.ID.String()),
		logger.String("rider_id", riderID.String()),
		logger.String("driver_id", driver.ID.String()),
		logger.Float64("pickup_distance_km", pickupDist),
		logger.Float64("fare", ride.Fare))

	u.publishTransition(ctx, ride)

	return ride, nil
}

// AcceptRide moves a ride from REQUESTED to ACCEPTED. Only the assigned
// driver may accept; the driver goes unavailable in the same transaction,
// and a concurrent duplicate accept loses the conditional update.
func (u *RideUC) AcceptRide(ctx context.Context, callerID uuid.UUID, rideID uuid.UUID) (*models.Ride, error) {
	driver, err := u.callerDriver(ctx, callerID)
	if err != nil {
		return nil, err
	}

	ride, err := u.getRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != driver.ID {
		return nil, apperr.Forbidden("Ride is assigned to another driver")
	}

	now := models.Now()
	swapped, err := u.rideRepo.AcceptRide(ctx, rideID, driver.ID, now)
	if err != nil {
		return nil, apperr.Internal("failed to accept ride", err)
	}
	if !swapped {
		return nil, u.conflictError(ctx, rideID, models.RideStatusRequested)
	}

	ride.Status = models.RideStatusAccepted
	ride.AcceptedAt = &now
	u.publishTransition(ctx, ride)

	return ride, nil
}

// CancelRide cancels a ride that has not been accepted yet. Both the rider
// and the pre-assigned driver may cancel; anyone else is rejected before
// the status is even considered.
func (u *RideUC) CancelRide(ctx context.Context, callerID uuid.UUID, role string, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := u.getRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	canceller := cancellerRider
	switch {
	case ride.RiderID == callerID:
	case role == models.RoleDriver:
		driver, err := u.callerDriver(ctx, callerID)
		if err != nil {
			return nil, err
		}
		if ride.DriverID != driver.ID {
			return nil, apperr.Forbidden("Not a participant of this ride")
		}
		canceller = cancellerDriver
	default:
		return nil, apperr.Forbidden("Not a participant of this ride")
	}

	now := models.Now()
	swapped, err := u.rideRepo.CancelRide(ctx, rideID, callerID, canceller, now)
	if err != nil {
		return nil, apperr.Internal("failed to cancel ride", err)
	}
	if !swapped {
		return nil, u.conflictError(ctx, rideID, models.RideStatusRequested)
	}

	ride.Status = models.RideStatusCancelled
	ride.CancelledAt = &now
	ride.CancelledBy = &callerID
	ride.Canceller = canceller
	u.publishTransition(ctx, ride)

	return ride, nil
}

// PickupRide moves a ride from ACCEPTED to PICKED_UP
func (u *RideUC) PickupRide(ctx context.Context, callerID uuid.UUID, rideID uuid.UUID) (*models.Ride, error) {
	return u.driverTransition(ctx, callerID, rideID, models.RideStatusAccepted,
		u.rideRepo.MarkPickedUp, models.RideStatusPickedUp)
}

// StartTransit moves a ride from PICKED_UP to IN_TRANSIT
func (u *RideUC) StartTransit(ctx context.Context, callerID uuid.UUID, rideID uuid.UUID) (*models.Ride, error) {
	return u.driverTransition(ctx, callerID, rideID, models.RideStatusPickedUp,
		u.rideRepo.MarkInTransit, models.RideStatusInTransit)
}

// CompleteRide moves a ride from IN_TRANSIT to COMPLETED and releases the
// driver back into the available pool within the same transaction.
func (u *RideUC) CompleteRide(ctx context.Context, callerID uuid.UUID, rideID uuid.UUID) (*models.Ride, error) {
	driver, err := u.callerDriver(ctx, callerID)
	if err != nil {
		return nil, err
	}

	ride, err := u.getRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != driver.ID {
		return nil, apperr.Forbidden("Ride is assigned to another driver")
	}

	now := models.Now()
	swapped, err := u.rideRepo.CompleteRide(ctx, rideID, driver.ID, now)
	if err != nil {
		return nil, apperr.Internal("failed to complete ride", err)
	}
	if !swapped {
		return nil, u.conflictError(ctx, rideID, models.RideStatusInTransit)
	}

	ride.Status = models.RideStatusCompleted
	ride.CompletedAt = &now
	u.publishTransition(ctx, ride)

	logger.Info("Ride completed",
		logger.String("ride_id", rideID.String()),
		logger.Float64("fare", ride.Fare))

	return ride, nil
}

// GetRide returns a single ride. The rider, the assigned driver, and
// admins may see it.
func (u *RideUC) GetRide(ctx context.Context, callerID uuid.UUID, role string, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := u.getRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if role == models.RoleAdmin || ride.RiderID == callerID {
		return ride, nil
	}
	if role == models.RoleDriver {
		driver, err := u.callerDriver(ctx, callerID)
		if err != nil && apperr.IsKind(err, apperr.KindInternal) {
			return nil, err
		}
		if err == nil && ride.DriverID == driver.ID {
			return ride, nil
		}
	}

	return nil, apperr.Forbidden("Not a participant of this ride")
}

// ListOwnRides returns the caller's ride history, newest first
func (u *RideUC) ListOwnRides(ctx context.Context, callerID uuid.UUID, role string, limit, offset int) ([]*models.Ride, error) {
	limit, offset = normalizePage(limit, offset)

	if role == models.RoleDriver {
		driver, err := u.callerDriver(ctx, callerID)
		if err != nil {
			return nil, err
		}
		list, err := u.rideRepo.ListRidesByDriver(ctx, driver.ID, limit, offset)
		if err != nil {
			return nil, apperr.Internal("failed to list rides", err)
		}
		return list, nil
	}

	list, err := u.rideRepo.ListRidesByRider(ctx, callerID, limit, offset)
	if err != nil {
		return nil, apperr.Internal("failed to list rides", err)
	}
	return list, nil
}

// ListAllRides returns a page across all rides. Admin only.
func (u *RideUC) ListAllRides(ctx context.Context, limit, offset int) ([]*models.Ride, error) {
	limit, offset = normalizePage(limit, offset)

	list, err := u.rideRepo.ListRides(ctx, limit, offset)
	if err != nil {
		return nil, apperr.Internal("failed to list rides", err)
	}
	return list, nil
}

// driverTransition factors the shared shape of pickup and transit: resolve
// the caller's driver profile, check assignment, attempt the conditional
// update, classify a lost swap.
func (u *RideUC) driverTransition(
	ctx context.Context,
	callerID uuid.UUID,
	rideID uuid.UUID,
	expected models.RideStatus,
	swap func(context.Context, uuid.UUID, time.Time) (bool, error),
	target models.RideStatus,
) (*models.Ride, error) {
	driver, err := u.callerDriver(ctx, callerID)
	if err != nil {
		return nil, err
	}

	ride, err := u.getRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != driver.ID {
		return nil, apperr.Forbidden("Ride is assigned to another driver")
	}

	now := models.Now()
	swapped, err := swap(ctx, rideID, now)
	if err != nil {
		return nil, apperr.Internal(fmt.Sprintf("failed to move ride to %s", target), err)
	}
	if !swapped {
		return nil, u.conflictError(ctx, rideID, expected)
	}

	ride.Status = target
	switch target {
	case models.RideStatusPickedUp:
		ride.PickedUpAt = &now
	case models.RideStatusInTransit:
		ride.TransitAt = &now
	}
	u.publishTransition(ctx, ride)

	return ride, nil
}

func (u *RideUC) getRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := u.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("Ride not found")
		}
		return nil, apperr.Internal("failed to get ride", err)
	}
	return ride, nil
}

// callerDriver resolves the caller's driver profile. Callers without one
// cannot act on rides as a driver.
func (u *RideUC) callerDriver(ctx context.Context, callerID uuid.UUID) (*models.Driver, error) {
	driver, err := u.driverFinder.GetDriverByUserID(ctx, callerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Forbidden("Caller has no driver profile")
		}
		return nil, apperr.Internal("failed to get driver", err)
	}
	return driver, nil
}

// conflictError re-reads a ride after a lost conditional update to tell a
// vanished ride apart from a stale status.
func (u *RideUC) conflictError(ctx context.Context, rideID uuid.UUID, expected models.RideStatus) error {
	ride, err := u.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("Ride not found")
		}
		return apperr.Internal("failed to get ride", err)
	}
	return apperr.BadRequest(
		fmt.Sprintf("Ride is in status %s, expected %s", ride.Status, expected))
}

// publishTransition emits the lifecycle event and bumps the transition
// counter. Publishing is best effort: a broker outage never fails the ride
// operation.
func (u *RideUC) publishTransition(ctx context.Context, ride *models.Ride) {
	observability.RideTransitionsTotal.WithLabelValues(string(ride.Status)).Inc()

	topic, ok := transitionTopics[ride.Status]
	if !ok {
		return
	}

	event := &models.RideEvent{
		RideID:    ride.ID,
		RiderID:   ride.RiderID,
		DriverID:  ride.DriverID,
		Status:    ride.Status,
		Fare:      ride.Fare,
		Timestamp: models.Now(),
	}

	if err := u.rideGW.PublishRideEvent(ctx, topic, event); err != nil {
		logger.Warn("Failed to publish ride event",
			logger.ErrorField(err),
			logger.String("ride_id", ride.ID.String()),
			logger.String("topic", topic))
	}
}

var transitionTopics = map[models.RideStatus]string{
	models.RideStatusRequested: constants.TopicRideRequested,
	models.RideStatusAccepted:  constants.TopicRideAccepted,
	models.RideStatusCancelled: constants.TopicRideCancelled,
	models.RideStatusPickedUp:  constants.TopicRidePickedUp,
	models.RideStatusInTransit: constants.TopicRideInTransit,
	models.RideStatusCompleted: constants.TopicRideCompleted,
}

func validateRideRequest(req *models.CreateRideRequest) error {
	var reasons []string
	if req.Pickup == nil {
		reasons = append(reasons, "pickup location is required")
	}
	if req.Destination == nil {
		reasons = append(reasons, "destination location is required")
	}
	if len(reasons) > 0 {
		return apperr.BadRequest("Invalid ride request", reasons...)
	}

	if err := validateLocation("pickup", *req.Pickup); err != nil {
		reasons = append(reasons, err.Error())
	}
	if err := validateLocation("destination", *req.Destination); err != nil {
		reasons = append(reasons, err.Error())
	}
	if len(reasons) > 0 {
		return apperr.BadRequest("Invalid ride request", reasons...)
	}

	return nil
}

func validateLocation(name string, loc models.Location) error {
	if loc.Latitude < -90 || loc.Latitude > 90 {
		return fmt.Errorf("%s latitude must be between -90 and 90", name)
	}
	if loc.Longitude < -180 || loc.Longitude > 180 {
		return fmt.Errorf("%s longitude must be between -180 and 180", name)
	}
	return nil
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
