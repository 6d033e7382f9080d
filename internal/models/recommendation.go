package models

// FlightDetail is the flight card returned by the search endpoint.
type FlightDetail struct {
	FlightNumber        string `json:"flight_number"`
	Airline             string `json:"airline"`
	Origin              string `json:"origin"`
	Destination         string `json:"destination"`
	DestinationName     string `json:"destination_name"`
	DepartureTime       string `json:"departure_time"` // HH:MM
	ArrivalTime         string `json:"arrival_time"`
	Aircraft            string `json:"aircraft"` // model, or "Unknown"
	Capacity            int    `json:"capacity,omitempty"`
	EstimatedPassengers int    `json:"estimated_passengers"`
	RouteType           string `json:"route_type"`
	Status              string `json:"status"`
}

// ArrivalRecommendation is the personalized arrival advice computed from the
// day's predicted congestion curve.
type ArrivalRecommendation struct {
	OptimalArrival       string `json:"optimal_arrival"` // HH:MM
	OptimalArrivalHour   int    `json:"optimal_arrival_hour"`
	PeakCongestionTime   string `json:"peak_congestion_time"`
	PeakPassengers       int    `json:"peak_passengers"`
	CongestionAtYourTime int    `json:"congestion_at_your_time"`
	Comparison           string `json:"comparison"`
	TimeSavings          string `json:"time_savings"`
	RouteTypeNote        string `json:"route_type_note"`
}
