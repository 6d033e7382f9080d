// Package estimation implements the five-stage passenger flow estimation
// pipeline: data preparation, capacity estimation, temporal distribution,
// hourly aggregation and confidence scoring. The pipeline is a pure function
// of its inputs; all storage access goes through the FlightSource and
// LoadFactorSource interfaces.
package estimation

import (
	"fmt"
	"time"

	"github.com/airflow-project/airflow-backend-go/internal/models"
)

// FlightSource supplies Stage 1 input: all flights departing the airport on
// the given date with status "scheduled", ordered by departure time.
type FlightSource interface {
	ScheduledDepartures(airportCode string, date time.Time) ([]models.Flight, error)
}

// Result carries the pipeline output: the 24-entry hourly prediction series
// plus the per-flight estimates behind it. Predictions is nil when no
// scheduled flights exist for the airport and date, which is distinct from
// 24 hours of zero.
type Result struct {
	Predictions []models.HourlyPrediction
	Flights     []models.FlightEstimate
}

// Pipeline runs the estimation stages for one (airport, date) scope.
type Pipeline struct {
	flights     FlightSource
	loadFactors LoadFactorSource
}

// New creates an estimation pipeline over the given sources.
func New(flights FlightSource, loadFactors LoadFactorSource) *Pipeline {
	return &Pipeline{flights: flights, loadFactors: loadFactors}
}

// Run executes the stages in order 1 -> (2, 3, 5 per flight) -> 4 and
// formats the final 24-hour series. Each invocation builds everything fresh;
// re-running for the same inputs is always safe.
func (p *Pipeline) Run(airportCode string, date time.Time) (*Result, error) {
	// Stage 1: data preparation
	flights, err := p.flights.ScheduledDepartures(airportCode, date)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare flight data: %w", err)
	}
	if len(flights) == 0 {
		return &Result{}, nil
	}

	season := SeasonFor(date)

	estimates := make([]models.FlightEstimate, 0, len(flights))
	for i := range flights {
		flight := &flights[i]
		routeType := flight.RouteType()

		// Stage 2: capacity estimation
		capacity, usedDefaultAircraft := resolveCapacity(flight, routeType)
		loadFactor, usedDefaultLF, err := resolveLoadFactor(p.loadFactors, flight, season, routeType)
		if err != nil {
			return nil, err
		}
		passengers := estimatePassengers(capacity, loadFactor)

		// Stage 3: temporal distribution
		arrivals := distributeTemporally(flight.DepartureTime, routeType, passengers)

		// Stage 5: confidence scoring
		confidence := confidenceScore(flight, usedDefaultAircraft, usedDefaultLF)

		estimates = append(estimates, models.FlightEstimate{
			Flight:                *flight,
			EstimatedPassengers:   passengers,
			Capacity:              capacity,
			LoadFactor:            loadFactor,
			UsedDefaultAircraft:   usedDefaultAircraft,
			UsedDefaultLoadFactor: usedDefaultLF,
			Arrivals:              arrivals,
			Confidence:            confidence,
		})
	}

	// Stage 4: hourly aggregation
	buckets := aggregateHourly(estimates)

	return &Result{
		Predictions: formatPredictions(buckets),
		Flights:     estimates,
	}, nil
}
