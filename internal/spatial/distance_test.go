package spatial

import (
	"math"
	"testing"
)

func TestHaversineDistance(t *testing.T) {
	// Dublin Airport to London Heathrow, roughly 449 km.
	d := HaversineDistance(53.4213, -6.2701, 51.4700, -0.4543)
	if d < 440000 || d > 460000 {
		t.Errorf("DUB-LHR distance %v m, want roughly 449 km", d)
	}

	if d := HaversineDistance(53.4213, -6.2701, 53.4213, -6.2701); d != 0 {
		t.Errorf("zero-length distance %v, want 0", d)
	}
}

// TestDestinationPointRoundTrip projects a point out along a bearing and
// checks the haversine distance back to the origin matches.
func TestDestinationPointRoundTrip(t *testing.T) {
	const (
		lat = 53.4213
		lon = -6.2701
	)

	for _, bearing := range []float64{0, 45, 90, 180, 270} {
		for _, distance := range []float64{60, 80, 100, 500} {
			dlat, dlon := DestinationPoint(lat, lon, bearing, distance)
			back := HaversineDistance(lat, lon, dlat, dlon)
			if math.Abs(back-distance) > 1.0 {
				t.Errorf("bearing %v distance %v: round trip measured %v m", bearing, distance, back)
			}
		}
	}
}

func TestDestinationPointNorth(t *testing.T) {
	// Due north keeps longitude fixed and increases latitude.
	dlat, dlon := DestinationPoint(53.4213, -6.2701, 0, 1000)
	if dlat <= 53.4213 {
		t.Errorf("northward projection latitude %v did not increase", dlat)
	}
	if math.Abs(dlon-(-6.2701)) > 1e-6 {
		t.Errorf("northward projection moved longitude to %v", dlon)
	}
}
