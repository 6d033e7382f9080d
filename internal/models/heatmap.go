package models

import "time"

// HeatmapPoint represents passenger presence at a terminal location and time.
type HeatmapPoint struct {
	ID             int64     `json:"id"`
	Airport        string    `json:"airport"` // IATA code
	Timestamp      time.Time `json:"timestamp"`
	Latitude       float64   `json:"lat"`
	Longitude      float64   `json:"lng"`
	PassengerCount int       `json:"passenger_count"`
}

// HeatmapData is the heatmap API payload: [lat, lon, intensity] triples
// with intensity normalized to 0-1 for the renderer.
type HeatmapData struct {
	Points     [][3]float64 `json:"points"`
	PointCount int          `json:"point_count"`
	Timestamp  string       `json:"timestamp,omitempty"` // most recent point, RFC 3339
}
