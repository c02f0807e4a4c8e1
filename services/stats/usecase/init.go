package usecase

import (
	"github.com/ridemate/ridemate/services/stats"
)

type StatsUC struct {
	statsRepo stats.StatsRepo
}

// NewStatsUC creates a new stats usecase instance
func NewStatsUC(statsRepo stats.StatsRepo) *StatsUC {
	return &StatsUC{statsRepo: statsRepo}
}
