package estimation

import (
	"testing"

	"github.com/airflow-project/airflow-backend-go/internal/models"
)

func TestConfidenceScore(t *testing.T) {
	cases := []struct {
		name                string
		status              string
		usedDefaultAircraft bool
		usedDefaultLF       bool
		want                float64
	}{
		{"all actual data", models.StatusScheduled, false, false, 1.0},
		{"all defaults, not scheduled", models.StatusDelayed, true, true, 0.0},
		{"aircraft known only", models.StatusDelayed, false, true, 0.5},
		{"specific load factor only", models.StatusDelayed, true, false, 0.3},
		{"scheduled only", models.StatusScheduled, true, true, 0.2},
		{"aircraft and scheduled", models.StatusScheduled, false, true, 0.7},
	}

	for _, tc := range cases {
		flight := &models.Flight{Status: tc.status}
		if got := confidenceScore(flight, tc.usedDefaultAircraft, tc.usedDefaultLF); got != tc.want {
			t.Errorf("%s: confidenceScore = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestConfidenceLevel(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{1.0, "High"},
		{0.8, "High"},
		{0.79, "Medium"},
		{0.5, "Medium"},
		{0.49, "Low"},
		{0.0, "Low"},
	}
	for _, tc := range cases {
		if got := ConfidenceLevel(tc.score); got != tc.want {
			t.Errorf("ConfidenceLevel(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}
