package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/airflow-project/airflow-backend-go/internal/estimation"
	"github.com/airflow-project/airflow-backend-go/internal/models"
	"github.com/airflow-project/airflow-backend-go/internal/repository"
	"github.com/airflow-project/airflow-backend-go/internal/stats"
)

// ErrAirportNotFound marks a request for an airport with no matching record.
// Handlers translate it to a 404 rather than an internal error.
var ErrAirportNotFound = errors.New("airport not found")

// PredictionReport bundles a pipeline run's output with the airport it was
// computed for and summary statistics.
type PredictionReport struct {
	Airport     models.Airport
	Date        time.Time
	Predictions []models.HourlyPrediction
	Summary     models.PredictionSummary
}

// EstimationService runs the estimation pipeline for HTTP callers and
// persists its hourly aggregates.
type EstimationService struct {
	airports  *repository.AirportRepository
	pipeline  *estimation.Pipeline
	estimates *repository.EstimateRepository
}

// NewEstimationService creates a new estimation service
func NewEstimationService(airports *repository.AirportRepository, pipeline *estimation.Pipeline, estimates *repository.EstimateRepository) *EstimationService {
	return &EstimationService{
		airports:  airports,
		pipeline:  pipeline,
		estimates: estimates,
	}
}

// PredictHourly resolves the airport and runs the pipeline for the given
// date. A nil Predictions slice means no scheduled flights, which callers
// render as "no schedule" rather than 24 hours of zero.
func (s *EstimationService) PredictHourly(airportCode string, date time.Time) (*PredictionReport, error) {
	airport, err := s.airports.GetByCode(airportCode)
	if err != nil {
		return nil, err
	}
	if airport == nil {
		return nil, fmt.Errorf("%w: %s", ErrAirportNotFound, airportCode)
	}

	result, err := s.pipeline.Run(airportCode, date)
	if err != nil {
		return nil, err
	}

	return &PredictionReport{
		Airport:     *airport,
		Date:        date,
		Predictions: result.Predictions,
		Summary:     summarize(result),
	}, nil
}

// RecomputeEstimates runs the pipeline and upserts the 24 hourly rows for
// (airport, date). Safe to re-run; the second run updates instead of
// creating.
func (s *EstimationService) RecomputeEstimates(airportCode string, date time.Time) (created, updated int, err error) {
	report, err := s.PredictHourly(airportCode, date)
	if err != nil {
		return 0, 0, err
	}
	if len(report.Predictions) == 0 {
		return 0, 0, nil
	}
	return s.estimates.Upsert(airportCode, date, report.Predictions)
}

// AvailableAirports lists the known IATA codes, used to enrich not-found
// responses.
func (s *EstimationService) AvailableAirports() ([]string, error) {
	return s.airports.ListCodes()
}

// summarize derives the day-level statistics from a pipeline result. Average
// confidence only counts hours with passengers; empty hours would drag the
// mean to zero.
func summarize(result *estimation.Result) models.PredictionSummary {
	summary := models.PredictionSummary{
		FlightsProcessed: len(result.Flights),
	}

	var confidences []float64
	for _, p := range result.Predictions {
		summary.TotalPassengers += p.Passengers
		if p.Passengers > summary.PeakPassengers {
			summary.PeakPassengers = p.Passengers
			summary.PeakHour = p.Hour
		}
		if p.Passengers > 0 {
			confidences = append(confidences, p.Confidence)
		}
	}
	summary.AvgConfidence = stats.Round2(stats.Mean(confidences))

	return summary
}
