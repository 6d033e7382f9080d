package estimation

import (
	"fmt"

	"github.com/airflow-project/airflow-backend-go/internal/models"
)

// LoadFactorSource resolves a single level of the load-factor lookup
// hierarchy. It returns (nil, nil) when no row matches the query.
type LoadFactorSource interface {
	Lookup(q models.LoadFactorQuery) (*models.LoadFactor, error)
}

// resolveCapacity returns the flight's seating capacity, falling back to the
// route-type default when no aircraft type is attached.
func resolveCapacity(flight *models.Flight, routeType string) (capacity int, usedDefault bool) {
	if flight.AircraftType != nil {
		return flight.AircraftType.TotalCapacity, false
	}
	capacity, ok := defaultCapacities[routeType]
	if !ok {
		capacity = defaultCapacities[models.RouteShortHaul]
	}
	return capacity, true
}

// lookupStep is one link of the load-factor fallback chain. Steps are tried
// in order; the first matching row wins.
type lookupStep struct {
	query     models.LoadFactorQuery
	isDefault bool // resolved value counts as a default for confidence scoring
}

// loadFactorChain builds the hierarchical lookup, most specific first:
//  1. exact (airline, season, route type)
//  2. (airline, all_year, route type)
//  3. airline-agnostic (season, route type), non-default rows only
//  4. airline-agnostic (all_year, route type), the is_default row
func loadFactorChain(airline, season, routeType string) []lookupStep {
	return []lookupStep{
		{query: models.LoadFactorQuery{Airline: airline, Season: season, RouteType: routeType}},
		{query: models.LoadFactorQuery{Airline: airline, Season: models.SeasonAllYear, RouteType: routeType}},
		{query: models.LoadFactorQuery{Season: season, RouteType: routeType, ExcludeDefault: true}},
		{query: models.LoadFactorQuery{Season: models.SeasonAllYear, RouteType: routeType, OnlyDefault: true}, isDefault: true},
	}
}

// resolveLoadFactor walks the fallback chain and, as a last resort when no
// reference rows exist, returns the hardcoded IATA constant for the route
// type. Missing reference data is never an error.
func resolveLoadFactor(src LoadFactorSource, flight *models.Flight, season, routeType string) (lf float64, usedDefault bool, err error) {
	for _, step := range loadFactorChain(flight.Airline, season, routeType) {
		row, err := src.Lookup(step.query)
		if err != nil {
			return 0, false, fmt.Errorf("failed to look up load factor: %w", err)
		}
		if row != nil {
			return row.Percentage, step.isDefault, nil
		}
	}

	lf, ok := fallbackLoadFactors[routeType]
	if !ok {
		lf = fallbackLoadFactors[models.RouteShortHaul]
	}
	return lf, true, nil
}

// estimatePassengers applies the Stage 2 formula. The product is truncated,
// not rounded: floor(capacity x load factor).
func estimatePassengers(capacity int, loadFactor float64) int {
	return int(float64(capacity) * loadFactor)
}
