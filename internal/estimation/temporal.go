package estimation

import (
	"math"
	"time"

	"github.com/airflow-project/airflow-backend-go/internal/models"
)

// windowFor returns the arrival window for a route type, defaulting to the
// short-haul window for unknown types.
func windowFor(routeType string) arrivalWindow {
	if w, ok := arrivalWindows[routeType]; ok {
		return w
	}
	return arrivalWindows[models.RouteShortHaul]
}

// normalWeights generates bell-curve slot weights centered on the window
// midpoint: mean (n-1)/2, sigma n/6, normalized to sum to 1.0. A single-slot
// window gets weight 1.0 outright.
func normalWeights(numSlots int) []float64 {
	if numSlots == 1 {
		return []float64{1.0}
	}

	mean := float64(numSlots-1) / 2.0
	stdDev := float64(numSlots) / 6.0

	weights := make([]float64, numSlots)
	var total float64
	for i := range weights {
		exponent := -math.Pow(float64(i)-mean, 2) / (2 * stdDev * stdDev)
		weights[i] = math.Exp(exponent)
		total += weights[i]
	}
	for i := range weights {
		weights[i] /= total
	}
	return weights
}

// distributeTemporally models when a flight's passengers reach the terminal,
// discretizing the arrival window into 15-minute slots counted backward from
// the window's far edge. Every slot but the last gets floor(passengers x
// weight); the last slot absorbs the remainder so the distribution sums to
// estimatedPassengers exactly. Slots with zero passengers are dropped.
func distributeTemporally(departure time.Time, routeType string, estimatedPassengers int) []models.ArrivalSlot {
	window := windowFor(routeType)

	numSlots := (window.MaxMinutes-window.MinMinutes)/slotIntervalMinutes + 1
	slotTimes := make([]time.Time, numSlots)
	for i := range slotTimes {
		minutesBefore := window.MaxMinutes - i*slotIntervalMinutes
		slotTimes[i] = departure.Add(-time.Duration(minutesBefore) * time.Minute)
	}

	weights := normalWeights(numSlots)

	var distribution []models.ArrivalSlot
	remaining := estimatedPassengers
	for i, slotTime := range slotTimes {
		var slotPassengers int
		if i == numSlots-1 {
			slotPassengers = remaining
		} else {
			slotPassengers = int(float64(estimatedPassengers) * weights[i])
			remaining -= slotPassengers
		}
		if slotPassengers > 0 {
			distribution = append(distribution, models.ArrivalSlot{Time: slotTime, Passengers: slotPassengers})
		}
	}
	return distribution
}
