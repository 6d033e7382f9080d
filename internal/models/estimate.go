package models

import "time"

// ArrivalSlot is one 15-minute slot of a flight's terminal-arrival curve.
type ArrivalSlot struct {
	Time       time.Time `json:"time"`
	Passengers int       `json:"passengers"`
}

// FlightEstimate is the per-flight derived record produced by the estimation
// pipeline. It lives only for the duration of a pipeline run.
type FlightEstimate struct {
	Flight                Flight        `json:"flight"`
	EstimatedPassengers   int           `json:"estimated_passengers"`
	Capacity              int           `json:"capacity"`
	LoadFactor            float64       `json:"load_factor"`
	UsedDefaultAircraft   bool          `json:"used_default_aircraft"`
	UsedDefaultLoadFactor bool          `json:"used_default_load_factor"`
	Arrivals              []ArrivalSlot `json:"arrivals"`
	Confidence            float64       `json:"confidence"`
}

// HourlyPrediction is one entry of the pipeline's 24-hour output.
type HourlyPrediction struct {
	Hour            int     `json:"hour"`
	Passengers      int     `json:"passengers"`
	Confidence      float64 `json:"confidence"`
	ConfidenceLevel string  `json:"confidence_level"`
}

// PredictionSummary carries the aggregate statistics returned alongside the
// 24 hourly predictions.
type PredictionSummary struct {
	TotalPassengers  int     `json:"total_passengers"`
	PeakHour         int     `json:"peak_hour"`
	PeakPassengers   int     `json:"peak_passengers"`
	FlightsProcessed int     `json:"flights_processed"`
	AvgConfidence    float64 `json:"avg_confidence"`
}

// PassengerEstimate is a persisted hourly aggregate, keyed by
// (airport, date, hour).
type PassengerEstimate struct {
	ID              int64   `json:"id"`
	Airport         string  `json:"airport"` // IATA code
	Date            string  `json:"date"`    // YYYY-MM-DD
	Hour            int     `json:"hour"`    // 0-23
	PassengerCount  int     `json:"passenger_count"`
	ConfidenceScore float64 `json:"confidence_score"`
}
