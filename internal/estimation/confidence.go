package estimation

import (
	"github.com/airflow-project/airflow-backend-go/internal/models"
	"github.com/airflow-project/airflow-backend-go/internal/stats"
)

// confidenceScore weighs how much of a flight's estimate relied on actual
// data versus defaults. Maximum 1.0, minimum 0.0, rounded to 2 decimals.
func confidenceScore(flight *models.Flight, usedDefaultAircraft, usedDefaultLF bool) float64 {
	score := 0.0
	if !usedDefaultAircraft {
		score += weightAircraftKnown
	}
	if !usedDefaultLF {
		score += weightSpecificLF
	}
	if flight.Status == models.StatusScheduled {
		score += weightStatusConfirmed
	}
	return stats.Round2(score)
}

// ConfidenceLevel maps a 0-1 confidence score to its human-readable level.
func ConfidenceLevel(score float64) string {
	switch {
	case score >= 0.8:
		return "High"
	case score >= 0.5:
		return "Medium"
	default:
		return "Low"
	}
}
