package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/airflow-project/airflow-backend-go/internal/models"
)

// Flight timestamps are stored as local wall-clock time without a zone.
const timeLayout = "2006-01-02 15:04:05"

// FlightRepository handles database operations for flights
type FlightRepository struct {
	db *sql.DB
}

// NewFlightRepository creates a new flight repository
func NewFlightRepository(db *sql.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

const flightSelect = `SELECT f.id, f.flight_number, f.origin, f.destination,
	d.name, d.country,
	f.departure_time, f.arrival_time, f.airline, f.status,
	a.id, a.model, a.manufacturer, a.total_capacity,
	a.economy_capacity, a.business_capacity, a.first_class_capacity
	FROM flights f
	JOIN airports d ON d.iata_code = f.destination
	LEFT JOIN aircraft_types a ON a.id = f.aircraft_type_id`

// ScheduledDepartures retrieves all flights departing the airport on the
// given date with status "scheduled", ordered by departure time. Cancelled
// flights are excluded entirely.
func (r *FlightRepository) ScheduledDepartures(airportCode string, date time.Time) ([]models.Flight, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := flightSelect + `
		WHERE f.origin = ? AND f.status = ? AND f.departure_time >= ? AND f.departure_time < ?
		ORDER BY f.departure_time ASC`

	rows, err := r.db.Query(query, airportCode, models.StatusScheduled,
		dayStart.Format(timeLayout), dayEnd.Format(timeLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to query scheduled departures: %w", err)
	}
	defer rows.Close()

	var flights []models.Flight
	for rows.Next() {
		flight, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *flight)
	}

	return flights, nil
}

// FindByNumber retrieves one flight by number departing the airport on the
// given date. Returns (nil, nil) when no flight matches.
func (r *FlightRepository) FindByNumber(airportCode, flightNumber string, date time.Time) (*models.Flight, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := flightSelect + `
		WHERE f.origin = ? AND f.flight_number = ? AND f.departure_time >= ? AND f.departure_time < ?
		LIMIT 1`

	rows, err := r.db.Query(query, airportCode, flightNumber,
		dayStart.Format(timeLayout), dayEnd.Format(timeLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to query flight: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanFlight(rows)
}

// Create inserts a flight. The aircraft type is optional; when present only
// its ID is referenced.
func (r *FlightRepository) Create(f *models.Flight) error {
	var aircraftTypeID sql.NullInt64
	if f.AircraftType != nil {
		aircraftTypeID = sql.NullInt64{Int64: f.AircraftType.ID, Valid: true}
	}

	query := `INSERT INTO flights
		(flight_number, origin, destination, departure_time, arrival_time, aircraft_type_id, airline, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.Exec(query,
		f.FlightNumber, f.Origin, f.Destination,
		f.DepartureTime.Format(timeLayout), f.ArrivalTime.Format(timeLayout),
		aircraftTypeID, f.Airline, f.Status)
	if err != nil {
		return fmt.Errorf("failed to create flight: %w", err)
	}

	f.ID, _ = result.LastInsertId()
	return nil
}

// scanFlight reads one flight row, including the optional aircraft type
func scanFlight(rows *sql.Rows) (*models.Flight, error) {
	var f models.Flight
	var departure, arrival string
	var acID sql.NullInt64
	var acModel, acManufacturer sql.NullString
	var acTotal, acEconomy, acBusiness, acFirst sql.NullInt64

	err := rows.Scan(
		&f.ID, &f.FlightNumber, &f.Origin, &f.Destination,
		&f.DestinationName, &f.DestinationCountry,
		&departure, &arrival, &f.Airline, &f.Status,
		&acID, &acModel, &acManufacturer, &acTotal,
		&acEconomy, &acBusiness, &acFirst,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan flight: %w", err)
	}

	if f.DepartureTime, err = time.Parse(timeLayout, departure); err != nil {
		return nil, fmt.Errorf("failed to parse departure time: %w", err)
	}
	if f.ArrivalTime, err = time.Parse(timeLayout, arrival); err != nil {
		return nil, fmt.Errorf("failed to parse arrival time: %w", err)
	}

	if acID.Valid {
		f.AircraftType = &models.AircraftType{
			ID:                 acID.Int64,
			Model:              acModel.String,
			Manufacturer:       acManufacturer.String,
			TotalCapacity:      int(acTotal.Int64),
			EconomyCapacity:    int(acEconomy.Int64),
			BusinessCapacity:   int(acBusiness.Int64),
			FirstClassCapacity: int(acFirst.Int64),
		}
	}

	return &f, nil
}
