package models

// Route types driving default capacity, load factor and arrival-window selection
const (
	RouteShortHaul = "short_haul"
	RouteLongHaul  = "long_haul"
	RouteRegional  = "regional"
)

// Seasons used to select load-factor rows
const (
	SeasonAllYear = "all_year"
	SeasonSummer  = "summer"
	SeasonWinter  = "winter"
)

// LoadFactor represents a fractional seat-occupancy rate keyed by
// (route_type, season, airline). An empty airline denotes an
// airline-agnostic row; IsDefault flags the ultimate fallback row
// for a route type.
type LoadFactor struct {
	ID         int64   `json:"id"`
	RouteType  string  `json:"route_type"`
	Season     string  `json:"season"`
	Airline    string  `json:"airline"`
	Percentage float64 `json:"percentage"` // 0.0-1.0
	IsDefault  bool    `json:"is_default"`
	Source     string  `json:"source"` // e.g. "IATA 2024-2025 Global Outlook"
}

// LoadFactorQuery describes one level of the hierarchical load-factor lookup.
type LoadFactorQuery struct {
	Airline        string
	Season         string
	RouteType      string
	OnlyDefault    bool // restrict to rows flagged is_default
	ExcludeDefault bool // restrict to rows not flagged is_default
}
