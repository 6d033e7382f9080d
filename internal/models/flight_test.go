package models

import "testing"

func TestFlightRouteType(t *testing.T) {
	cases := []struct {
		country string
		want    string
	}{
		{"Ireland", RouteShortHaul},
		{"United Kingdom", RouteShortHaul},
		{"Spain", RouteShortHaul},
		{"Greece", RouteShortHaul},
		{"United States", RouteLongHaul},
		{"United Arab Emirates", RouteLongHaul},
		{"Turkey", RouteLongHaul}, // not on the European list
		{"", RouteLongHaul},
	}

	for _, tc := range cases {
		f := &Flight{DestinationCountry: tc.country}
		if got := f.RouteType(); got != tc.want {
			t.Errorf("RouteType(%q) = %q, want %q", tc.country, got, tc.want)
		}
	}
}
