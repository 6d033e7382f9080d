package models

import "time"

// Flight statuses
const (
	StatusScheduled = "scheduled"
	StatusCancelled = "cancelled"
	StatusDelayed   = "delayed"
	StatusDeparted  = "departed"
	StatusArrived   = "arrived"
)

// europeanCountries is the fixed destination-country list used to classify
// a departure as short-haul. Everything else is treated as long-haul.
var europeanCountries = map[string]bool{
	"Ireland":        true,
	"United Kingdom": true,
	"France":         true,
	"Germany":        true,
	"Spain":          true,
	"Italy":          true,
	"Netherlands":    true,
	"Belgium":        true,
	"Portugal":       true,
	"Greece":         true,
}

// Flight represents a scheduled departure. Timestamps are local airport
// wall-clock time; hour bucketing downstream uses them as-is.
type Flight struct {
	ID                 int64         `json:"id"`
	FlightNumber       string        `json:"flight_number"`
	Origin             string        `json:"origin"`      // IATA code
	Destination        string        `json:"destination"` // IATA code
	DestinationName    string        `json:"destination_name"`
	DestinationCountry string        `json:"destination_country"`
	DepartureTime      time.Time     `json:"departure_time"`
	ArrivalTime        time.Time     `json:"arrival_time"`
	Airline            string        `json:"airline"`
	Status             string        `json:"status"`
	AircraftType       *AircraftType `json:"aircraft_type,omitempty"` // nil triggers capacity defaults
}

// RouteType classifies the flight by destination country membership in the
// European list. The regional route type exists in reference data but is not
// derivable from this heuristic, so it is never returned here.
func (f *Flight) RouteType() string {
	if europeanCountries[f.DestinationCountry] {
		return RouteShortHaul
	}
	return RouteLongHaul
}
