// Command seed loads the reference data the estimation pipeline depends on
// (airports, aircraft types, IATA load factors) and optionally a demo flight
// schedule for Dublin Airport. Re-running updates rows in place.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/airflow-project/airflow-backend-go/internal/config"
	"github.com/airflow-project/airflow-backend-go/internal/database"
	"github.com/airflow-project/airflow-backend-go/internal/models"
	"github.com/airflow-project/airflow-backend-go/internal/repository"
)

var airports = []models.Airport{
	{IATACode: "DUB", Name: "Dublin Airport", City: "Dublin", Country: "Ireland", Timezone: "Europe/Dublin", Latitude: 53.4213, Longitude: -6.2701},
	{IATACode: "ORK", Name: "Cork Airport", City: "Cork", Country: "Ireland", Timezone: "Europe/Dublin", Latitude: 51.8413, Longitude: -8.4911},
	{IATACode: "SNN", Name: "Shannon Airport", City: "Shannon", Country: "Ireland", Timezone: "Europe/Dublin", Latitude: 52.6997, Longitude: -8.9248},
	{IATACode: "LHR", Name: "London Heathrow", City: "London", Country: "United Kingdom", Timezone: "Europe/London", Latitude: 51.4700, Longitude: -0.4543},
	{IATACode: "LGW", Name: "London Gatwick", City: "London", Country: "United Kingdom", Timezone: "Europe/London", Latitude: 51.1537, Longitude: -0.1821},
	{IATACode: "MAN", Name: "Manchester Airport", City: "Manchester", Country: "United Kingdom", Timezone: "Europe/London", Latitude: 53.3537, Longitude: -2.2750},
	{IATACode: "AGP", Name: "Malaga Airport", City: "Malaga", Country: "Spain", Timezone: "Europe/Madrid", Latitude: 36.6749, Longitude: -4.4991},
	{IATACode: "BCN", Name: "Barcelona Airport", City: "Barcelona", Country: "Spain", Timezone: "Europe/Madrid", Latitude: 41.2974, Longitude: 2.0833},
	{IATACode: "PMI", Name: "Palma Airport", City: "Palma", Country: "Spain", Timezone: "Europe/Madrid", Latitude: 39.5517, Longitude: 2.7388},
	{IATACode: "CDG", Name: "Paris Charles de Gaulle", City: "Paris", Country: "France", Timezone: "Europe/Paris", Latitude: 49.0097, Longitude: 2.5479},
	{IATACode: "FRA", Name: "Frankfurt Airport", City: "Frankfurt", Country: "Germany", Timezone: "Europe/Berlin", Latitude: 50.0379, Longitude: 8.5622},
	{IATACode: "AMS", Name: "Amsterdam Schiphol", City: "Amsterdam", Country: "Netherlands", Timezone: "Europe/Amsterdam", Latitude: 52.3105, Longitude: 4.7683},
	{IATACode: "JFK", Name: "John F. Kennedy International", City: "New York", Country: "United States", Timezone: "America/New_York", Latitude: 40.6413, Longitude: -73.7781},
	{IATACode: "BOS", Name: "Boston Logan International", City: "Boston", Country: "United States", Timezone: "America/New_York", Latitude: 42.3656, Longitude: -71.0096},
	{IATACode: "DXB", Name: "Dubai International", City: "Dubai", Country: "United Arab Emirates", Timezone: "Asia/Dubai", Latitude: 25.2532, Longitude: 55.3657},
}

var aircraftTypes = []models.AircraftType{
	{Model: "A320", Manufacturer: "Airbus", TotalCapacity: 180, EconomyCapacity: 168, BusinessCapacity: 12},
	{Model: "A321", Manufacturer: "Airbus", TotalCapacity: 220, EconomyCapacity: 204, BusinessCapacity: 16},
	{Model: "A319", Manufacturer: "Airbus", TotalCapacity: 156, EconomyCapacity: 144, BusinessCapacity: 12},
	{Model: "B737-800", Manufacturer: "Boeing", TotalCapacity: 189, EconomyCapacity: 174, BusinessCapacity: 15},
	{Model: "B737 MAX 8", Manufacturer: "Boeing", TotalCapacity: 178, EconomyCapacity: 162, BusinessCapacity: 16},
	{Model: "B777-300ER", Manufacturer: "Boeing", TotalCapacity: 350, EconomyCapacity: 286, BusinessCapacity: 52, FirstClassCapacity: 12},
	{Model: "B777-200", Manufacturer: "Boeing", TotalCapacity: 300, EconomyCapacity: 250, BusinessCapacity: 42, FirstClassCapacity: 8},
	{Model: "A330-300", Manufacturer: "Airbus", TotalCapacity: 330, EconomyCapacity: 277, BusinessCapacity: 45, FirstClassCapacity: 8},
	{Model: "B787-9", Manufacturer: "Boeing", TotalCapacity: 296, EconomyCapacity: 246, BusinessCapacity: 40, FirstClassCapacity: 10},
	{Model: "ATR-72", Manufacturer: "ATR", TotalCapacity: 72, EconomyCapacity: 72},
	{Model: "ATR-42", Manufacturer: "ATR", TotalCapacity: 48, EconomyCapacity: 48},
	{Model: "E190", Manufacturer: "Embraer", TotalCapacity: 100, EconomyCapacity: 94, BusinessCapacity: 6},
}

// Load factors based on the IATA 2024-2025 global outlook, with seasonal
// variations and a few airline-specific rows
var loadFactors = []models.LoadFactor{
	{RouteType: models.RouteShortHaul, Season: models.SeasonAllYear, Percentage: 0.84, IsDefault: true, Source: "IATA 2024-2025 Global Outlook"},
	{RouteType: models.RouteLongHaul, Season: models.SeasonAllYear, Percentage: 0.82, IsDefault: true, Source: "IATA 2024-2025 Global Outlook"},
	{RouteType: models.RouteRegional, Season: models.SeasonAllYear, Percentage: 0.78, IsDefault: true, Source: "IATA 2024-2025 Global Outlook"},
	{RouteType: models.RouteShortHaul, Season: models.SeasonSummer, Percentage: 0.87, Source: "IATA Seasonal Variations"},
	{RouteType: models.RouteShortHaul, Season: models.SeasonWinter, Percentage: 0.81, Source: "IATA Seasonal Variations"},
	{RouteType: models.RouteLongHaul, Season: models.SeasonSummer, Percentage: 0.85, Source: "IATA Seasonal Variations"},
	{RouteType: models.RouteLongHaul, Season: models.SeasonWinter, Percentage: 0.79, Source: "IATA Seasonal Variations"},
	{RouteType: models.RouteShortHaul, Season: models.SeasonAllYear, Airline: "Ryanair", Percentage: 0.95, Source: "Ryanair Annual Report 2024"},
	{RouteType: models.RouteShortHaul, Season: models.SeasonAllYear, Airline: "Aer Lingus", Percentage: 0.86, Source: "IAG Annual Report 2024"},
}

// flightTemplate describes one demo departure from Dublin
type flightTemplate struct {
	number        string
	destination   string
	departure     string // HH:MM
	durationHours float64
	aircraftModel string // empty triggers capacity defaults
	airline       string
}

var flightTemplates = []flightTemplate{
	{"EI101", "LHR", "06:30", 1.25, "A320", "Aer Lingus"},
	{"FR201", "AGP", "06:45", 3.0, "B737-800", "Ryanair"},
	{"EI105", "CDG", "07:15", 1.75, "A320", "Aer Lingus"},
	{"BA831", "LGW", "07:40", 1.25, "A319", "British Airways"},
	{"EI109", "AMS", "08:10", 1.5, "A321", "Aer Lingus"},
	{"FR305", "BCN", "08:30", 2.5, "B737-800", "Ryanair"},
	{"LH977", "FRA", "09:15", 2.0, "A321", "Lufthansa"},
	{"FR401", "PMI", "09:45", 2.75, "", "Ryanair"},
	{"EI107", "MAN", "10:20", 1.0, "ATR-72", "Aer Lingus"},
	{"EI111", "JFK", "11:00", 8.0, "A330-300", "Aer Lingus"},
	{"EI115", "BOS", "12:45", 7.5, "A330-300", "Aer Lingus"},
	{"FR601", "BCN", "13:10", 2.5, "B737-800", "Ryanair"},
	{"EK161", "DXB", "15:30", 7.0, "B777-300ER", "Emirates"},
	{"BA843", "LHR", "17:10", 1.25, "A320", "British Airways"},
	{"EI123", "CDG", "18:15", 1.75, "", "Aer Lingus"},
	{"FR1101", "AGP", "20:45", 3.0, "B737-800", "Ryanair"},
}

func main() {
	withFlights := flag.Bool("flights", true, "also seed a demo flight schedule for DUB")
	dateStr := flag.String("date", "", "schedule date YYYY-MM-DD (default: tomorrow)")
	flag.Parse()

	date := time.Now().AddDate(0, 0, 1)
	if *dateStr != "" {
		var err error
		if date, err = time.Parse("2006-01-02", *dateStr); err != nil {
			log.Fatal("Invalid -date, use YYYY-MM-DD:", err)
		}
	}

	cfg := config.Load()
	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	db := database.GetDB()
	airportRepo := repository.NewAirportRepository(db)
	aircraftRepo := repository.NewAircraftRepository(db)
	loadFactorRepo := repository.NewLoadFactorRepository(db)
	flightRepo := repository.NewFlightRepository(db)

	for _, a := range airports {
		if err := airportRepo.Upsert(a); err != nil {
			log.Fatal("Failed to seed airport:", err)
		}
	}
	log.Printf("Seeded %d airports", len(airports))

	byModel := make(map[string]*models.AircraftType, len(aircraftTypes))
	for i := range aircraftTypes {
		ac := &aircraftTypes[i]
		if err := aircraftRepo.Upsert(ac); err != nil {
			log.Fatal("Failed to seed aircraft type:", err)
		}
		byModel[ac.Model] = ac
	}
	log.Printf("Seeded %d aircraft types", len(aircraftTypes))

	for _, lf := range loadFactors {
		if err := loadFactorRepo.Upsert(lf); err != nil {
			log.Fatal("Failed to seed load factor:", err)
		}
	}
	log.Printf("Seeded %d load factors", len(loadFactors))

	if !*withFlights {
		return
	}

	for _, tpl := range flightTemplates {
		departure, err := time.Parse("2006-01-02 15:04", date.Format("2006-01-02")+" "+tpl.departure)
		if err != nil {
			log.Fatal("Bad template departure time:", err)
		}

		flight := models.Flight{
			FlightNumber:  tpl.number,
			Origin:        "DUB",
			Destination:   tpl.destination,
			DepartureTime: departure,
			ArrivalTime:   departure.Add(time.Duration(tpl.durationHours * float64(time.Hour))),
			Airline:       tpl.airline,
			Status:        models.StatusScheduled,
			AircraftType:  byModel[tpl.aircraftModel],
		}
		if err := flightRepo.Create(&flight); err != nil {
			log.Fatal("Failed to seed flight:", err)
		}
	}
	log.Printf("Seeded %d flights for DUB on %s", len(flightTemplates), date.Format("2006-01-02"))
}
