package models

import (
	"time"

	"github.com/google/uuid"
)

// Driver represents the driver profile attached to a user account
type Driver struct {
	ID           uuid.UUID `json:"id" db:"id"`
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	VehicleType  string    `json:"vehicle_type" db:"vehicle_type"`
	VehiclePlate string    `json:"vehicle_plate" db:"vehicle_plate"`
	IsApproved   bool      `json:"is_approved" db:"is_approved"`
	IsSuspended  bool      `json:"is_suspended" db:"is_suspended"`
	IsAvailable  bool      `json:"is_available" db:"is_available"`
	Location     *Location `json:"location,omitempty"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Eligible reports whether the driver can be offered a new ride.
func (d *Driver) Eligible() bool {
	return d.IsApproved && !d.IsSuspended && d.IsAvailable && d.Location != nil
}

// RegisterDriverRequest is the payload for driver registration
type RegisterDriverRequest struct {
	VehicleType  string `json:"vehicle_type"`
	VehiclePlate string `json:"vehicle_plate"`
}

// UpdateLocationRequest is the payload for driver location updates
type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NearbyDriver is a driver returned by the nearby-drivers query
type NearbyDriver struct {
	DriverID   string   `json:"driver_id"`
	Location   Location `json:"location"`
	DistanceKm float64  `json:"distance_km"`
}
