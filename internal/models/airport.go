package models

// Airport represents an airport with its terminal location
type Airport struct {
	IATACode  string  `json:"code"`      // IATA three-letter code (e.g., DUB, ORK, SNN)
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Timezone  string  `json:"timezone"`  // IANA name, e.g. Europe/Dublin
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}
