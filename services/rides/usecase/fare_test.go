package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ridemate/ridemate/internal/pkg/models"
)

func TestCalculateFare(t *testing.T) {
	uc := &RideUC{cfg: &models.Config{
		Pricing: models.PricingConfig{BaseFare: 50, PerKmRate: 20},
	}}

	tests := []struct {
		name       string
		distanceKm float64
		want       float64
	}{
		{"zero distance charges base fare", 0, 50},
		{"one kilometer", 1, 70},
		{"fractional distance rounds to cents", 3.456, 119.12},
		{"long trip", 25.5, 560},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, uc.calculateFare(tt.distanceKm))
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, round2(1.2349))
	assert.Equal(t, 1.24, round2(1.2351))
	assert.Equal(t, 100.0, round2(99.999))
}
