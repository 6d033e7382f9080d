package estimation

import "github.com/airflow-project/airflow-backend-go/internal/models"

// Default aircraft capacities applied when a flight has no aircraft type.
// Typical A320 / B777 / ATR-72 configurations.
var defaultCapacities = map[string]int{
	models.RouteShortHaul: 180,
	models.RouteLongHaul:  350,
	models.RouteRegional:  80,
}

// Hardcoded load-factor fallbacks, used only when no reference rows exist
// at all. Based on the IATA 2024-2025 global outlook.
var fallbackLoadFactors = map[string]float64{
	models.RouteShortHaul: 0.84,
	models.RouteLongHaul:  0.82,
	models.RouteRegional:  0.78,
}

// arrivalWindow bounds how many minutes before departure passengers reach
// the terminal, per route type.
type arrivalWindow struct {
	MinMinutes int
	MaxMinutes int
}

var arrivalWindows = map[string]arrivalWindow{
	models.RouteShortHaul: {MinMinutes: 90, MaxMinutes: 120},
	models.RouteLongHaul:  {MinMinutes: 150, MaxMinutes: 180},
	models.RouteRegional:  {MinMinutes: 60, MaxMinutes: 90},
}

// Confidence weights: capacity varies by hundreds of seats, load factors by
// single-digit percentages, and status is usually known.
const (
	weightAircraftKnown   = 0.5
	weightSpecificLF      = 0.3
	weightStatusConfirmed = 0.2
	slotIntervalMinutes   = 15
)
