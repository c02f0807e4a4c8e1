package usecase

import "math"

// calculateFare prices a ride from its trip distance: a flat base fare plus
// a per-kilometer rate, rounded to two decimals.
func (u *RideUC) calculateFare(distanceKm float64) float64 {
	return round2(u.cfg.Pricing.BaseFare + u.cfg.Pricing.PerKmRate*distanceKm)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
