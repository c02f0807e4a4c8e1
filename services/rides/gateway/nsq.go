package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/ridemate/ridemate/internal/pkg/models"
	"github.com/ridemate/ridemate/internal/pkg/nsq"
	"github.com/ridemate/ridemate/internal/pkg/retry"
)

// RideGW publishes ride lifecycle events to NSQ with a short retry budget.
// A nil producer (messaging disabled in config) turns publishing into a
// no-op.
type RideGW struct {
	producer *nsq.Producer
	retrier  *retry.Retrier
}

// NewRideGW creates a new ride gateway
func NewRideGW(producer *nsq.Producer) *RideGW {
	return &RideGW{
		producer: producer,
		retrier: retry.New(retry.Config{
			MaxRetries: 3,
			BaseDelay:  50 * time.Millisecond,
			MaxDelay:   time.Second,
			Multiplier: 2.0,
			Jitter:     true,
		}),
	}
}

// PublishRideEvent sends a lifecycle event to the given topic
func (g *RideGW) PublishRideEvent(ctx context.Context, topic string, event *models.RideEvent) error {
	if g.producer == nil {
		return nil
	}

	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.producer.Publish(topic, event)
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", topic, err)
	}

	return nil
}
