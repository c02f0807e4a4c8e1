package usecase

import (
	"context"

	"github.com/ridemate/ridemate/internal/pkg/apperr"
	"github.com/ridemate/ridemate/internal/pkg/logger"
	"github.com/ridemate/ridemate/internal/pkg/models"
	"github.com/ridemate/ridemate/internal/pkg/observability"
	"github.com/ridemate/ridemate/internal/utils"
)

// matchDriver picks the eligible driver closest to the pickup point.
// Candidates beyond the configured radius are skipped; equal distances are
// resolved by the lexicographically smallest driver ID so the choice is
// deterministic.
func (u *RideUC) matchDriver(ctx context.Context, pickup models.Location) (*models.Driver, float64, error) {
	candidates, err := u.driverFinder.EligibleDrivers(ctx)
	if err != nil {
		observability.MatchAttemptsTotal.WithLabelValues("error").Inc()
		return nil, 0, apperr.Internal("failed to load eligible drivers", err)
	}

	observability.MatchCandidates.Observe(float64(len(candidates)))

	var (
		best     *models.Driver
		bestDist float64
	)
	for _, candidate := range candidates {
		if candidate.Location == nil {
			continue
		}

		dist := utils.DistanceKm(pickup, *candidate.Location)
		if dist > u.cfg.Match.MaxRadiusKm {
			continue
		}

		switch {
		case best == nil:
			best, bestDist = candidate, dist
		case dist < bestDist:
			best, bestDist = candidate, dist
		case dist == bestDist && candidate.ID.String() < best.ID.String():
			best = candidate
		}
	}

	if best == nil {
		observability.MatchAttemptsTotal.WithLabelValues("no_driver").Inc()
		return nil, 0, apperr.NotFound("No available drivers nearby")
	}

	observability.MatchAttemptsTotal.WithLabelValues("matched").Inc()
	logger.Debug("Matched driver",
		logger.String("driver_id", best.ID.String()),
		logger.Float64("distance_km", bestDist))

	return best, bestDist, nil
}
