package rides

import (
	"context"

	"github.com/ridemate/ridemate/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/ridemate/ridemate/services/rides RideGW

// RideGW publishes ride lifecycle events to the message bus
type RideGW interface {
	PublishRideEvent(ctx context.Context, topic string, event *models.RideEvent) error
}
