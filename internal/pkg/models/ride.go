package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the lifecycle status of a ride
type RideStatus string

const (
	RideStatusRequested RideStatus = "REQUESTED"
	RideStatusAccepted  RideStatus = "ACCEPTED"
	RideStatusPickedUp  RideStatus = "PICKED_UP"
	RideStatusInTransit RideStatus = "IN_TRANSIT"
	RideStatusCompleted RideStatus = "COMPLETED"
	RideStatusCancelled RideStatus = "CANCELLED"
)

// Terminal reports whether no further transitions are permitted.
func (s RideStatus) Terminal() bool {
	return s == RideStatusCompleted || s == RideStatusCancelled
}

// Location represents a geographical point
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Ride represents a single trip from request to completion or cancellation
type Ride struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	RiderID     uuid.UUID  `json:"rider_id" db:"rider_id"`
	DriverID    uuid.UUID  `json:"driver_id" db:"driver_id"`
	Pickup      Location   `json:"pickup"`
	Destination Location   `json:"destination"`
	Status      RideStatus `json:"status" db:"status"`
	Fare        float64    `json:"fare" db:"fare"`
	DistanceKm  float64    `json:"distance_km" db:"distance_km"`
	RequestedAt time.Time  `json:"requested_at" db:"requested_at"`
	AcceptedAt  *time.Time `json:"accepted_at,omitempty" db:"accepted_at"`
	PickedUpAt  *time.Time `json:"picked_up_at,omitempty" db:"picked_up_at"`
	TransitAt   *time.Time `json:"transit_at,omitempty" db:"transit_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty" db:"cancelled_at"`
	CancelledBy *uuid.UUID `json:"cancelled_by,omitempty" db:"cancelled_by"`
	Canceller   string     `json:"canceller,omitempty" db:"canceller"`
}

// CreateRideRequest is the payload for ride creation
type CreateRideRequest struct {
	Pickup      *Location `json:"pickup"`
	Destination *Location `json:"destination"`
}

// RideEvent is published to the message bus on every lifecycle transition
type RideEvent struct {
	RideID    uuid.UUID  `json:"ride_id"`
	RiderID   uuid.UUID  `json:"rider_id"`
	DriverID  uuid.UUID  `json:"driver_id"`
	Status    RideStatus `json:"status"`
	Fare      float64    `json:"fare"`
	Timestamp time.Time  `json:"timestamp"`
}
