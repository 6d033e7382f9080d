package service

import (
	"fmt"
	"time"

	"github.com/airflow-project/airflow-backend-go/internal/models"
	"github.com/airflow-project/airflow-backend-go/internal/repository"
	"github.com/airflow-project/airflow-backend-go/internal/spatial"
)

// maxClusterPassengers is the passenger count that maps to full heatmap
// intensity; larger clusters are clamped to 1.0.
const maxClusterPassengers = 200

// HeatmapService serves heatmap density points and regenerates them from
// stored hourly estimates.
type HeatmapService struct {
	airports  *repository.AirportRepository
	estimates *repository.EstimateRepository
	heatmap   *repository.HeatmapRepository
}

// NewHeatmapService creates a new heatmap service
func NewHeatmapService(airports *repository.AirportRepository, estimates *repository.EstimateRepository, heatmap *repository.HeatmapRepository) *HeatmapService {
	return &HeatmapService{
		airports:  airports,
		estimates: estimates,
		heatmap:   heatmap,
	}
}

// Data returns the airport and its density points as renderer-ready
// [lat, lon, intensity] triples, intensity normalized against
// maxClusterPassengers.
func (s *HeatmapService) Data(airportCode string) (*models.Airport, *models.HeatmapData, error) {
	airport, err := s.airports.GetByCode(airportCode)
	if err != nil {
		return nil, nil, err
	}
	if airport == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrAirportNotFound, airportCode)
	}

	points, err := s.heatmap.ListByAirport(airportCode)
	if err != nil {
		return nil, nil, err
	}

	data := &models.HeatmapData{
		Points:     make([][3]float64, 0, len(points)),
		PointCount: len(points),
	}
	for _, p := range points {
		intensity := float64(p.PassengerCount) / maxClusterPassengers
		if intensity > 1.0 {
			intensity = 1.0
		}
		data.Points = append(data.Points, [3]float64{p.Latitude, p.Longitude, intensity})
	}
	if len(points) > 0 {
		// ListByAirport orders most recent first
		data.Timestamp = points[0].Timestamp.Format(time.RFC3339)
	}

	return airport, data, nil
}

// AvailableAirports lists the known IATA codes, used to enrich not-found
// responses.
func (s *HeatmapService) AvailableAirports() ([]string, error) {
	return s.airports.ListCodes()
}

// Generate rebuilds the airport's density points from the stored hourly
// estimates for the given date, scattering cluster points around the
// terminal location. Returns the number of points written.
func (s *HeatmapService) Generate(airportCode string, date time.Time) (int, error) {
	airport, err := s.airports.GetByCode(airportCode)
	if err != nil {
		return 0, err
	}
	if airport == nil {
		return 0, fmt.Errorf("%w: %s", ErrAirportNotFound, airportCode)
	}

	estimates, err := s.estimates.ListByAirportDate(airportCode, date)
	if err != nil {
		return 0, err
	}

	var points []models.HeatmapPoint
	for _, e := range estimates {
		if e.PassengerCount == 0 {
			continue
		}
		timestamp := time.Date(date.Year(), date.Month(), date.Day(), e.Hour, 0, 0, 0, time.UTC)
		points = append(points, clusterPoints(airport, timestamp, e.PassengerCount)...)
	}

	if err := s.heatmap.Replace(airportCode, points); err != nil {
		return 0, err
	}

	return len(points), nil
}

// clusterPoints splits one hour's passengers into clusters scattered at
// fixed bearings and radii around the terminal. Deterministic so repeated
// generation produces identical points.
func clusterPoints(airport *models.Airport, timestamp time.Time, passengers int) []models.HeatmapPoint {
	numClusters := passengers/maxClusterPassengers + 1
	if numClusters > 8 {
		numClusters = 8
	}

	points := make([]models.HeatmapPoint, 0, numClusters)
	remaining := passengers
	for i := 0; i < numClusters; i++ {
		share := passengers / numClusters
		if i == numClusters-1 {
			share = remaining
		}
		remaining -= share

		bearing := float64(i) * 360.0 / float64(numClusters)
		distance := 60.0 + 20.0*float64(i%3)
		lat, lon := spatial.DestinationPoint(airport.Latitude, airport.Longitude, bearing, distance)

		points = append(points, models.HeatmapPoint{
			Airport:        airport.IATACode,
			Timestamp:      timestamp,
			Latitude:       lat,
			Longitude:      lon,
			PassengerCount: share,
		})
	}

	return points
}
