package models

// AircraftType represents an aircraft model with its seating capacity.
// Cabin-class breakdown is stored for future use; the estimation pipeline
// only consumes TotalCapacity.
type AircraftType struct {
	ID                 int64  `json:"id"`
	Model              string `json:"model"`        // e.g. A320, B777-300ER, ATR-72
	Manufacturer       string `json:"manufacturer"`
	TotalCapacity      int    `json:"total_capacity"`
	EconomyCapacity    int    `json:"economy_capacity"`
	BusinessCapacity   int    `json:"business_capacity"`
	FirstClassCapacity int    `json:"first_class_capacity"`
}
