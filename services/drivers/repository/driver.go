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

// DriverRepo implements driver data access on postgres
type DriverRepo struct {
	db *sqlx.DB
}

// NewDriverRepo creates a new driver repository
func NewDriverRepo(client *database.PostgresClient) *DriverRepo {
	return &DriverRepo{db: client.GetDB()}
}

// driverRow maps the drivers table including the nullable location columns
type driverRow struct {
	ID           uuid.UUID       `db:"id"`
	UserID       uuid.UUID       `db:"user_id"`
	VehicleType  string          `db:"vehicle_type"`
	VehiclePlate string          `db:"vehicle_plate"`
	IsApproved   bool            `db:"is_approved"`
	IsSuspended  bool            `db:"is_suspended"`
	IsAvailable  bool            `db:"is_available"`
	Latitude     sql.NullFloat64 `db:"latitude"`
	Longitude    sql.NullFloat64 `db:"longitude"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

func (row *driverRow) toModel() *models.Driver {
	driver := &models.Driver{
		ID:           row.ID,
		UserID:       row.UserID,
		VehicleType:  row.VehicleType,
		VehiclePlate: row.VehiclePlate,
		IsApproved:   row.IsApproved,
		IsSuspended:  row.IsSuspended,
		IsAvailable:  row.IsAvailable,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	if row.Latitude.Valid && row.Longitude.Valid {
		driver.Location = &models.Location{
			Latitude:  row.Latitude.Float64,
			Longitude: row.Longitude.Float64,
		}
	}
	return driver
}

const driverColumns = `id, user_id, vehicle_type, vehicle_plate, is_approved, is_suspended, is_available, latitude, longitude, created_at, updated_at`

// CreateDriver inserts a new driver profile, assigning its ID and timestamps
func (r *DriverRepo) CreateDriver(ctx context.Context, driver *models.Driver) error {
	driver.ID = uuid.New()
	now := models.Now()
	driver.CreatedAt = now
	driver.UpdatedAt = now

	query := `
		INSERT INTO drivers (id, user_id, vehicle_type, vehicle_plate,
			is_approved, is_suspended, is_available, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		driver.ID, driver.UserID, driver.VehicleType, driver.VehiclePlate,
		driver.IsApproved, driver.IsSuspended, driver.IsAvailable,
		driver.CreatedAt, driver.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert driver: %w", err)
	}

	return nil
}

// GetDriverByID retrieves a driver by its ID
func (r *DriverRepo) GetDriverByID(ctx context.Context, id uuid.UUID) (*models.Driver, error) {
	query := fmt.Sprintf(`SELECT %s FROM drivers WHERE id = $1`, driverColumns)

	var row driverRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("driver %s: %w", id, sql.ErrNoRows)
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	return row.toModel(), nil
}

// GetDriverByUserID retrieves a driver profile by its backing user account
func (r *DriverRepo) GetDriverByUserID(ctx context.Context, userID uuid.UUID) (*models.Driver, error) {
	query := fmt.Sprintf(`SELECT %s FROM drivers WHERE user_id = $1`, driverColumns)

	var row driverRow
	if err := r.db.GetContext(ctx, &row, query, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("driver for user %s: %w", userID, sql.ErrNoRows)
		}
		return nil, fmt.Errorf("failed to get driver by user: %w", err)
	}

	return row.toModel(), nil
}

// ListDrivers returns a page of drivers ordered by creation time, newest first
func (r *DriverRepo) ListDrivers(ctx context.Context, limit, offset int) ([]*models.Driver, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM drivers
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, driverColumns)

	rows := []driverRow{}
	if err := r.db.SelectContext(ctx, &rows, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}

	drivers := make([]*models.Driver, 0, len(rows))
	for i := range rows {
		drivers = append(drivers, rows[i].toModel())
	}

	return drivers, nil
}

// SetAvailability updates a driver's availability flag
func (r *DriverRepo) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	query := `UPDATE drivers SET is_available = $2, updated_at = $3 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, available, models.Now())
	if err != nil {
		return fmt.Errorf("failed to update availability: %w", err)
	}

	return requireRow(result, id)
}

// SetApproval updates a driver's approval flag and keeps the backing user's
// role in sync within the same transaction.
func (r *DriverRepo) SetApproval(ctx context.Context, id uuid.UUID, approved bool) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := models.Now()

	// Revoking approval also takes the driver off the road.
	query := `
		UPDATE drivers
		SET is_approved = $2,
			is_available = CASE WHEN $2 THEN is_available ELSE FALSE END,
			updated_at = $3
		WHERE id = $1
	`
	result, err := tx.ExecContext(ctx, query, id, approved, now)
	if err != nil {
		return fmt.Errorf("failed to update approval: %w", err)
	}
	if err := requireRow(result, id); err != nil {
		return err
	}

	role := models.RoleRider
	if approved {
		role = models.RoleDriver
	}
	roleQuery := `
		UPDATE users SET role = $2, updated_at = $3
		WHERE id = (SELECT user_id FROM drivers WHERE id = $1)
	`
	if _, err := tx.ExecContext(ctx, roleQuery, id, role, now); err != nil {
		return fmt.Errorf("failed to update user role: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// SetSuspension updates a driver's suspension flag. Suspending clears
// availability in the same statement.
func (r *DriverRepo) SetSuspension(ctx context.Context, id uuid.UUID, suspended bool) error {
	query := `
		UPDATE drivers
		SET is_suspended = $2,
			is_available = CASE WHEN $2 THEN FALSE ELSE is_available END,
			updated_at = $3
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id, suspended, models.Now())
	if err != nil {
		return fmt.Errorf("failed to update suspension: %w", err)
	}

	return requireRow(result, id)
}

// UpdateLocation records a driver's last reported position
func (r *DriverRepo) UpdateLocation(ctx context.Context, id uuid.UUID, location models.Location) error {
	query := `UPDATE drivers SET latitude = $2, longitude = $3, updated_at = $4 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, location.Latitude, location.Longitude, models.Now())
	if err != nil {
		return fmt.Errorf("failed to update location: %w", err)
	}

	return requireRow(result, id)
}

func requireRow(result sql.Result, id uuid.UUID) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("driver %s: %w", id, sql.ErrNoRows)
	}
	return nil
}
