package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/airflow-project/airflow-backend-go/internal/estimation"
	"github.com/airflow-project/airflow-backend-go/internal/models"
	"github.com/airflow-project/airflow-backend-go/internal/repository"
)

// ErrFlightNotFound marks a search for a flight number with no match on the
// requested date.
var ErrFlightNotFound = errors.New("flight not found")

// Recommended arrival offset in minutes before departure, the midpoint of
// each route type's arrival window.
var recommendedArrivalMinutes = map[string]int{
	models.RouteShortHaul: 105,
	models.RouteLongHaul:  165,
	models.RouteRegional:  75,
}

// FlightService implements flight search with personalized arrival advice.
type FlightService struct {
	airports *repository.AirportRepository
	flights  *repository.FlightRepository
	pipeline *estimation.Pipeline
}

// NewFlightService creates a new flight service
func NewFlightService(airports *repository.AirportRepository, flights *repository.FlightRepository, pipeline *estimation.Pipeline) *FlightService {
	return &FlightService{
		airports: airports,
		flights:  flights,
		pipeline: pipeline,
	}
}

// Search looks up a flight by number and derives an arrival recommendation
// by comparing the congestion at the recommended arrival hour with the day's
// predicted peak.
func (s *FlightService) Search(airportCode, flightNumber string, date time.Time) (*models.FlightDetail, *models.ArrivalRecommendation, error) {
	airport, err := s.airports.GetByCode(airportCode)
	if err != nil {
		return nil, nil, err
	}
	if airport == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrAirportNotFound, airportCode)
	}

	flight, err := s.flights.FindByNumber(airportCode, flightNumber, date)
	if err != nil {
		return nil, nil, err
	}
	if flight == nil {
		return nil, nil, fmt.Errorf("%w: %s on %s", ErrFlightNotFound, flightNumber, date.Format("2006-01-02"))
	}

	result, err := s.pipeline.Run(airportCode, date)
	if err != nil {
		return nil, nil, err
	}

	detail := buildDetail(flight, result)
	recommendation := buildRecommendation(flight, result.Predictions)

	return detail, recommendation, nil
}

// buildDetail assembles the flight card, pulling the per-flight estimate out
// of the pipeline result when the flight was part of the run.
func buildDetail(flight *models.Flight, result *estimation.Result) *models.FlightDetail {
	detail := &models.FlightDetail{
		FlightNumber:    flight.FlightNumber,
		Airline:         flight.Airline,
		Origin:          flight.Origin,
		Destination:     flight.Destination,
		DestinationName: flight.DestinationName,
		DepartureTime:   flight.DepartureTime.Format("15:04"),
		ArrivalTime:     flight.ArrivalTime.Format("15:04"),
		Aircraft:        "Unknown",
		RouteType:       flight.RouteType(),
		Status:          flight.Status,
	}
	if flight.AircraftType != nil {
		detail.Aircraft = flight.AircraftType.Model
		detail.Capacity = flight.AircraftType.TotalCapacity
	}

	for i := range result.Flights {
		if result.Flights[i].Flight.ID == flight.ID {
			detail.EstimatedPassengers = result.Flights[i].EstimatedPassengers
			break
		}
	}

	return detail
}

// buildRecommendation compares congestion at the recommended arrival hour
// against the day's peak. Under 70% of peak counts as good timing, under 90%
// as moderate, anything above as peak.
func buildRecommendation(flight *models.Flight, predictions []models.HourlyPrediction) *models.ArrivalRecommendation {
	routeType := flight.RouteType()
	minutes, ok := recommendedArrivalMinutes[routeType]
	if !ok {
		minutes = recommendedArrivalMinutes[models.RouteShortHaul]
	}

	optimalArrival := flight.DepartureTime.Add(-time.Duration(minutes) * time.Minute)
	optimalHour := optimalArrival.Hour()
	optimalTime := optimalArrival.Format("15:04")

	var congestion, peakHour, peakPassengers int
	for _, p := range predictions {
		if p.Hour == optimalHour {
			congestion = p.Passengers
		}
		if p.Passengers > peakPassengers {
			peakPassengers = p.Passengers
			peakHour = p.Hour
		}
	}

	var comparison, timeSavings string
	switch {
	case float64(congestion) < float64(peakPassengers)*0.7:
		comparison = fmt.Sprintf("Good timing! Arriving at %s avoids peak congestion (%d passengers at %02d:00)",
			optimalTime, peakPassengers, peakHour)
		timeSavings = "10-15 minutes faster processing"
	case float64(congestion) < float64(peakPassengers)*0.9:
		comparison = fmt.Sprintf("Moderate congestion. Arriving at %s has %d passengers (peak: %d at %02d:00)",
			optimalTime, congestion, peakPassengers, peakHour)
		timeSavings = "5-10 minutes faster than peak"
	default:
		comparison = fmt.Sprintf("Peak time! Arriving at %s coincides with %d passengers. Consider arriving 30 mins earlier.",
			optimalTime, congestion)
		timeSavings = "Peak congestion - expect delays"
	}

	routeLabel := routeTypeLabel(routeType)

	return &models.ArrivalRecommendation{
		OptimalArrival:       optimalTime,
		OptimalArrivalHour:   optimalHour,
		PeakCongestionTime:   fmt.Sprintf("%02d:00", peakHour),
		PeakPassengers:       peakPassengers,
		CongestionAtYourTime: congestion,
		Comparison:           comparison,
		TimeSavings:          timeSavings,
		RouteTypeNote: fmt.Sprintf("%s flight - recommend arriving %dh %dm before departure",
			routeLabel, minutes/60, minutes%60),
	}
}

// routeTypeLabel turns "short_haul" into "Short Haul" for display
func routeTypeLabel(routeType string) string {
	words := strings.Split(routeType, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
