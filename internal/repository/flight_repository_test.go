package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/airflow-project/airflow-backend-go/internal/models"
)

func seedFlightFixtures(t *testing.T, db *sql.DB) *models.AircraftType {
	t.Helper()

	seedAirport(t, db, "DUB", "Ireland")
	seedAirport(t, db, "LHR", "United Kingdom")
	seedAirport(t, db, "JFK", "United States")

	ac := &models.AircraftType{Model: "A320", Manufacturer: "Airbus", TotalCapacity: 180}
	if err := NewAircraftRepository(db).Upsert(ac); err != nil {
		t.Fatal(err)
	}
	return ac
}

func TestScheduledDeparturesFiltersAndOrders(t *testing.T) {
	db := newTestDB(t)
	ac := seedFlightFixtures(t, db)

	repo := NewFlightRepository(db)
	date := time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC)

	insert := []models.Flight{
		{FlightNumber: "EI103", Origin: "DUB", Destination: "LHR",
			DepartureTime: date.Add(14 * time.Hour), ArrivalTime: date.Add(15 * time.Hour),
			Airline: "Aer Lingus", Status: models.StatusScheduled, AircraftType: ac},
		{FlightNumber: "EI101", Origin: "DUB", Destination: "LHR",
			DepartureTime: date.Add(8 * time.Hour), ArrivalTime: date.Add(9 * time.Hour),
			Airline: "Aer Lingus", Status: models.StatusScheduled},
		{FlightNumber: "FR999", Origin: "DUB", Destination: "LHR",
			DepartureTime: date.Add(10 * time.Hour), ArrivalTime: date.Add(11 * time.Hour),
			Airline: "Ryanair", Status: models.StatusCancelled},
		{FlightNumber: "EI201", Origin: "DUB", Destination: "JFK",
			DepartureTime: date.AddDate(0, 0, 1).Add(11 * time.Hour), ArrivalTime: date.AddDate(0, 0, 1).Add(18 * time.Hour),
			Airline: "Aer Lingus", Status: models.StatusScheduled},
	}
	for i := range insert {
		if err := repo.Create(&insert[i]); err != nil {
			t.Fatal(err)
		}
	}

	flights, err := repo.ScheduledDepartures("DUB", date)
	if err != nil {
		t.Fatal(err)
	}

	// Cancelled and next-day flights are excluded, remainder ordered by time.
	if len(flights) != 2 {
		t.Fatalf("got %d flights, want 2", len(flights))
	}
	if flights[0].FlightNumber != "EI101" || flights[1].FlightNumber != "EI103" {
		t.Errorf("order %s, %s; want EI101, EI103", flights[0].FlightNumber, flights[1].FlightNumber)
	}

	// Destination country comes from the airports join.
	if flights[0].DestinationCountry != "United Kingdom" {
		t.Errorf("destination country %q, want United Kingdom", flights[0].DestinationCountry)
	}

	// EI101 has no aircraft type, EI103 carries the joined one.
	if flights[0].AircraftType != nil {
		t.Errorf("EI101 should have nil aircraft type")
	}
	if flights[1].AircraftType == nil || flights[1].AircraftType.TotalCapacity != 180 {
		t.Errorf("EI103 should carry the A320 with capacity 180")
	}
}

func TestFindByNumber(t *testing.T) {
	db := newTestDB(t)
	seedFlightFixtures(t, db)

	repo := NewFlightRepository(db)
	date := time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC)

	flight := models.Flight{
		FlightNumber: "EI101", Origin: "DUB", Destination: "LHR",
		DepartureTime: date.Add(8 * time.Hour), ArrivalTime: date.Add(9 * time.Hour),
		Airline: "Aer Lingus", Status: models.StatusScheduled,
	}
	if err := repo.Create(&flight); err != nil {
		t.Fatal(err)
	}

	found, err := repo.FindByNumber("DUB", "EI101", date)
	if err != nil {
		t.Fatal(err)
	}
	if found == nil || found.ID != flight.ID {
		t.Fatalf("expected flight %d, got %+v", flight.ID, found)
	}
	if !found.DepartureTime.Equal(flight.DepartureTime) {
		t.Errorf("departure time %v, want %v", found.DepartureTime, flight.DepartureTime)
	}

	// Wrong date: no match, no error.
	missing, err := repo.FindByNumber("DUB", "EI101", date.AddDate(0, 0, 1))
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Errorf("expected nil for wrong date, got %+v", missing)
	}
}
