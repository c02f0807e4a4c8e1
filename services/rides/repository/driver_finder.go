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

// DriverFinder reads the driver rows the matcher and the lifecycle
// authorization checks need.
type DriverFinder struct {
	db *sqlx.DB
}

// NewDriverFinder creates a new driver finder
func NewDriverFinder(client *database.PostgresClient) *DriverFinder {
	return &DriverFinder{db: client.GetDB()}
}

type finderRow struct {
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

func (row *finderRow) toModel() *models.Driver {
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

const finderColumns = `id, user_id, vehicle_type, vehicle_plate, is_approved, is_suspended, is_available, latitude, longitude, created_at, updated_at`

// EligibleDrivers returns drivers that can be offered a new ride: approved,
// not suspended, available, with a known position.
func (f *DriverFinder) EligibleDrivers(ctx context.Context) ([]*models.Driver, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM drivers
		WHERE is_approved = TRUE
		  AND is_suspended = FALSE
		  AND is_available = TRUE
		  AND latitude IS NOT NULL
		  AND longitude IS NOT NULL
	`, finderColumns)

	rows := []finderRow{}
	if err := f.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to load eligible drivers: %w", err)
	}

	drivers := make([]*models.Driver, 0, len(rows))
	for i := range rows {
		drivers = append(drivers, rows[i].toModel())
	}

	return drivers, nil
}

// GetDriverByUserID resolves a caller's driver profile
func (f *DriverFinder) GetDriverByUserID(ctx context.Context, userID uuid.UUID) (*models.Driver, error) {
	query := fmt.Sprintf(`SELECT %s FROM drivers WHERE user_id = $1`, finderColumns)

	var row finderRow
	if err := f.db.GetContext(ctx, &row, query, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("driver for user %s: %w", userID, sql.ErrNoRows)
		}
		return nil, fmt.Errorf("failed to get driver by user: %w", err)
	}

	return row.toModel(), nil
}
