package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ridemate/ridemate/internal/pkg/database"
	"github.com/ridemate/ridemate/internal/pkg/models"
)

// RideRepo implements ride data access on postgres
type RideRepo struct {
	db *sqlx.DB
}

// NewRideRepo creates a new ride repository
func NewRideRepo(client *database.PostgresClient) *RideRepo {
	return &RideRepo{db: client.GetDB()}
}

// rideRow maps the rides table
type rideRow struct {
	ID           uuid.UUID         `db:"id"`
	RiderID      uuid.UUID         `db:"rider_id"`
	DriverID     uuid.UUID         `db:"driver_id"`
	PickupLat    float64           `db:"pickup_latitude"`
	PickupLng    float64           `db:"pickup_longitude"`
	DestLat      float64           `db:"destination_latitude"`
	DestLng      float64           `db:"destination_longitude"`
	Status       models.RideStatus `db:"status"`
	Fare         float64           `db:"fare"`
	DistanceKm   float64           `db:"distance_km"`
	RequestedAt  time.Time         `db:"requested_at"`
	AcceptedAt   *time.Time        `db:"accepted_at"`
	PickedUpAt   *time.Time        `db:"picked_up_at"`
	TransitAt    *time.Time        `db:"transit_at"`
	CompletedAt  *time.Time        `db:"completed_at"`
	CancelledAt  *time.Time        `db:"cancelled_at"`
	CancelledBy  *uuid.UUID        `db:"cancelled_by"`
	CancellerRaw sql.NullString    `db:"canceller"`
}

func (row *rideRow) toModel() *models.Ride {
	ride := &models.Ride{
		ID:          row.ID,
		RiderID:     row.RiderID,
		DriverID:    row.DriverID,
		Pickup:      models.Location{Latitude: row.PickupLat, Longitude: row.PickupLng},
		Destination: models.Location{Latitude: row.DestLat, Longitude: row.DestLng},
		Status:      row.Status,
		Fare:        row.Fare,
		DistanceKm:  row.DistanceKm,
		RequestedAt: row.RequestedAt,
		AcceptedAt:  row.AcceptedAt,
		PickedUpAt:  row.PickedUpAt,
		TransitAt:   row.TransitAt,
		CompletedAt: row.CompletedAt,
		CancelledAt: row.CancelledAt,
		CancelledBy: row.CancelledBy,
	}
	if row.CancellerRaw.Valid {
		ride.Canceller = row.CancellerRaw.String
	}
	return ride
}

const rideColumns = `id, rider_id, driver_id, pickup_latitude, pickup_longitude, destination_latitude, destination_longitude, status, fare, distance_km, requested_at, accepted_at, picked_up_at, transit_at, completed_at, cancelled_at, cancelled_by, canceller`

// CreateRide inserts a new ride in REQUESTED status, assigning its ID
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	ride.ID = uuid.New()

	query := `
		INSERT INTO rides (id, rider_id, driver_id,
			pickup_latitude, pickup_longitude,
			destination_latitude, destination_longitude,
			status, fare, distance_km, requested_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		ride.ID, ride.RiderID, ride.DriverID,
		ride.Pickup.Latitude, ride.Pickup.Longitude,
		ride.Destination.Latitude, ride.Destination.Longitude,
		ride.Status, ride.Fare, ride.DistanceKm, ride.RequestedAt)
	if err != nil {
		return fmt.Errorf("failed to insert ride: %w", err)
	}

	return nil
}

// GetRide retrieves a ride by its ID
func (r *RideRepo) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	query := fmt.Sprintf(`SELECT %s FROM rides WHERE id = $1`, rideColumns)

	var row rideRow
	if err := r.db.GetContext(ctx, &row, query, rideID); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("ride %s: %w", rideID, sql.ErrNoRows)
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}

	return row.toModel(), nil
}

// AcceptRide conditionally moves a ride from REQUESTED to ACCEPTED and
// takes the driver off the available pool in the same transaction. The
// status predicate in the UPDATE is what guarantees at most one of two
// racing accepts wins.
func (r *RideRepo) AcceptRide(ctx context.Context, rideID, driverID uuid.UUID, at time.Time) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE rides SET status = $3, accepted_at = $4
		WHERE id = $1 AND driver_id = $2 AND status = $5
	`
	result, err := tx.ExecContext(ctx, query,
		rideID, driverID, models.RideStatusAccepted, at, models.RideStatusRequested)
	if err != nil {
		return false, fmt.Errorf("failed to accept ride: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check accept result: %w", err)
	}
	if rows == 0 {
		return false, nil
	}

	availQuery := `UPDATE drivers SET is_available = FALSE, updated_at = $2 WHERE id = $1`
	if _, err := tx.ExecContext(ctx, availQuery, driverID, at); err != nil {
		return false, fmt.Errorf("failed to mark driver unavailable: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return true, nil
}

// CancelRide conditionally moves a ride from REQUESTED to CANCELLED,
// recording who cancelled and in which capacity.
func (r *RideRepo) CancelRide(ctx context.Context, rideID, cancelledBy uuid.UUID, canceller string, at time.Time) (bool, error) {
	query := `
		UPDATE rides SET status = $2, cancelled_at = $3, cancelled_by = $4, canceller = $5
		WHERE id = $1 AND status = $6
	`
	result, err := r.db.ExecContext(ctx, query,
		rideID, models.RideStatusCancelled, at, cancelledBy, canceller, models.RideStatusRequested)
	if err != nil {
		return false, fmt.Errorf("failed to cancel ride: %w", err)
	}

	return oneRow(result)
}

// MarkPickedUp conditionally moves a ride from ACCEPTED to PICKED_UP
func (r *RideRepo) MarkPickedUp(ctx context.Context, rideID uuid.UUID, at time.Time) (bool, error) {
	query := `UPDATE rides SET status = $2, picked_up_at = $3 WHERE id = $1 AND status = $4`

	result, err := r.db.ExecContext(ctx, query,
		rideID, models.RideStatusPickedUp, at, models.RideStatusAccepted)
	if err != nil {
		return false, fmt.Errorf("failed to mark ride picked up: %w", err)
	}

	return oneRow(result)
}

// MarkInTransit conditionally moves a ride from PICKED_UP to IN_TRANSIT
func (r *RideRepo) MarkInTransit(ctx context.Context, rideID uuid.UUID, at time.Time) (bool, error) {
	query := `UPDATE rides SET status = $2, transit_at = $3 WHERE id = $1 AND status = $4`

	result, err := r.db.ExecContext(ctx, query,
		rideID, models.RideStatusInTransit, at, models.RideStatusPickedUp)
	if err != nil {
		return false, fmt.Errorf("failed to mark ride in transit: %w", err)
	}

	return oneRow(result)
}

// CompleteRide conditionally moves a ride from IN_TRANSIT to COMPLETED and
// returns the driver to the available pool in the same transaction.
func (r *RideRepo) CompleteRide(ctx context.Context, rideID, driverID uuid.UUID, at time.Time) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE rides SET status = $3, completed_at = $4
		WHERE id = $1 AND driver_id = $2 AND status = $5
	`
	result, err := tx.ExecContext(ctx, query,
		rideID, driverID, models.RideStatusCompleted, at, models.RideStatusInTransit)
	if err != nil {
		return false, fmt.Errorf("failed to complete ride: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check complete result: %w", err)
	}
	if rows == 0 {
		return false, nil
	}

	availQuery := `UPDATE drivers SET is_available = TRUE, updated_at = $2 WHERE id = $1`
	if _, err := tx.ExecContext(ctx, availQuery, driverID, at); err != nil {
		return false, fmt.Errorf("failed to mark driver available: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return true, nil
}

// HasActiveRide reports whether a rider has a ride that is not yet terminal
func (r *RideRepo) HasActiveRide(ctx context.Context, riderID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM rides WHERE rider_id = $1 AND status NOT IN ($2, $3))`

	var active bool
	err := r.db.GetContext(ctx, &active, query,
		riderID, models.RideStatusCompleted, models.RideStatusCancelled)
	if err != nil {
		return false, fmt.Errorf("failed to check active rides: %w", err)
	}

	return active, nil
}

// ListRidesByRider returns a rider's rides, newest first
func (r *RideRepo) ListRidesByRider(ctx context.Context, riderID uuid.UUID, limit, offset int) ([]*models.Ride, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM rides
		WHERE rider_id = $1
		ORDER BY requested_at DESC
		LIMIT $2 OFFSET $3
	`, rideColumns)

	return r.listRides(ctx, query, riderID, limit, offset)
}

// ListRidesByDriver returns a driver's rides, newest first
func (r *RideRepo) ListRidesByDriver(ctx context.Context, driverID uuid.UUID, limit, offset int) ([]*models.Ride, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM rides
		WHERE driver_id = $1
		ORDER BY requested_at DESC
		LIMIT $2 OFFSET $3
	`, rideColumns)

	return r.listRides(ctx, query, driverID, limit, offset)
}

// ListRides returns a page across all rides, newest first
func (r *RideRepo) ListRides(ctx context.Context, limit, offset int) ([]*models.Ride, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM rides
		ORDER BY requested_at DESC
		LIMIT $1 OFFSET $2
	`, rideColumns)

	rows := []rideRow{}
	if err := r.db.SelectContext(ctx, &rows, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list rides: %w", err)
	}

	return toModels(rows), nil
}

func (r *RideRepo) listRides(ctx context.Context, query string, id uuid.UUID, limit, offset int) ([]*models.Ride, error) {
	rows := []rideRow{}
	if err := r.db.SelectContext(ctx, &rows, query, id, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list rides: %w", err)
	}

	return toModels(rows), nil
}

func toModels(rows []rideRow) []*models.Ride {
	rides := make([]*models.Ride, 0, len(rows))
	for i := range rows {
		rides = append(rides, rows[i].toModel())
	}
	return rides
}

func oneRow(result sql.Result) (bool, error) {
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check update result: %w", err)
	}
	return rows == 1, nil
}
