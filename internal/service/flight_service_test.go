package service

import (
	"strings"
	"testing"
	"time"

	"github.com/airflow-project/airflow-backend-go/internal/models"
)

// predictionsWithPeak builds a day where the given peak hour carries
// peakPassengers and every other hour carries fill.
func predictionsWithPeak(peakHour, peakPassengers, fill int) []models.HourlyPrediction {
	predictions := make([]models.HourlyPrediction, 24)
	for h := range predictions {
		predictions[h] = models.HourlyPrediction{Hour: h, Passengers: fill}
	}
	predictions[peakHour].Passengers = peakPassengers
	return predictions
}

func TestBuildRecommendationThresholds(t *testing.T) {
	// Short haul departing 10:00: recommended arrival is 105 minutes
	// earlier, 08:15, so congestion is read from hour 8.
	flight := &models.Flight{
		DestinationCountry: "Spain",
		DepartureTime:      time.Date(2025, 7, 12, 10, 0, 0, 0, time.UTC),
	}

	cases := []struct {
		name         string
		congestionAt int
		wantPhrase   string
	}{
		{"below 70% of peak", 600, "Good timing"},
		{"between 70% and 90%", 800, "Moderate congestion"},
		{"at or above 90%", 950, "Peak time"},
	}

	for _, tc := range cases {
		predictions := predictionsWithPeak(17, 1000, 100)
		predictions[8].Passengers = tc.congestionAt

		rec := buildRecommendation(flight, predictions)
		if rec.OptimalArrival != "08:15" || rec.OptimalArrivalHour != 8 {
			t.Fatalf("%s: optimal arrival %s/%d, want 08:15/8",
				tc.name, rec.OptimalArrival, rec.OptimalArrivalHour)
		}
		if rec.PeakCongestionTime != "17:00" || rec.PeakPassengers != 1000 {
			t.Errorf("%s: peak %s/%d, want 17:00/1000",
				tc.name, rec.PeakCongestionTime, rec.PeakPassengers)
		}
		if rec.CongestionAtYourTime != tc.congestionAt {
			t.Errorf("%s: congestion %d, want %d",
				tc.name, rec.CongestionAtYourTime, tc.congestionAt)
		}
		if !strings.Contains(rec.Comparison, tc.wantPhrase) {
			t.Errorf("%s: comparison %q does not contain %q",
				tc.name, rec.Comparison, tc.wantPhrase)
		}
	}
}

func TestBuildRecommendationLongHaulOffset(t *testing.T) {
	// Long haul departing 11:00: 165 minutes earlier is 08:15.
	flight := &models.Flight{
		DestinationCountry: "United States",
		DepartureTime:      time.Date(2025, 7, 12, 11, 0, 0, 0, time.UTC),
	}

	rec := buildRecommendation(flight, predictionsWithPeak(17, 1000, 100))
	if rec.OptimalArrival != "08:15" {
		t.Errorf("optimal arrival %s, want 08:15", rec.OptimalArrival)
	}
	if !strings.Contains(rec.RouteTypeNote, "2h 45m") {
		t.Errorf("route note %q should mention the 2h 45m offset", rec.RouteTypeNote)
	}
	if !strings.Contains(rec.RouteTypeNote, "Long Haul") {
		t.Errorf("route note %q should label the route type", rec.RouteTypeNote)
	}
}

func TestBuildRecommendationEmptyPredictions(t *testing.T) {
	flight := &models.Flight{
		DestinationCountry: "France",
		DepartureTime:      time.Date(2025, 7, 12, 9, 0, 0, 0, time.UTC),
	}

	// No predictions at all: peak is zero, so 0 < 0*0.7 is false and the
	// recommendation falls through to the peak branch without panicking.
	rec := buildRecommendation(flight, nil)
	if rec.PeakPassengers != 0 || rec.CongestionAtYourTime != 0 {
		t.Errorf("got peak %d congestion %d, want zeros",
			rec.PeakPassengers, rec.CongestionAtYourTime)
	}
}

func TestRouteTypeLabel(t *testing.T) {
	cases := map[string]string{
		"short_haul": "Short Haul",
		"long_haul":  "Long Haul",
		"regional":   "Regional",
	}
	for in, want := range cases {
		if got := routeTypeLabel(in); got != want {
			t.Errorf("routeTypeLabel(%q) = %q, want %q", in, got, want)
		}
	}
}
