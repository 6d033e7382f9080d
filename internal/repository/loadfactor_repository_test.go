package repository

import (
	"testing"

	"github.com/airflow-project/airflow-backend-go/internal/models"
)

func TestLoadFactorLookup(t *testing.T) {
	db := newTestDB(t)
	repo := NewLoadFactorRepository(db)

	rows := []models.LoadFactor{
		{RouteType: models.RouteShortHaul, Season: models.SeasonAllYear, Percentage: 0.84, IsDefault: true, Source: "IATA 2024"},
		{RouteType: models.RouteShortHaul, Season: models.SeasonSummer, Percentage: 0.87},
		{RouteType: models.RouteShortHaul, Season: models.SeasonSummer, Airline: "Ryanair", Percentage: 0.95},
	}
	for _, lf := range rows {
		if err := repo.Upsert(lf); err != nil {
			t.Fatal(err)
		}
	}

	// Exact airline row.
	got, err := repo.Lookup(models.LoadFactorQuery{
		RouteType: models.RouteShortHaul, Season: models.SeasonSummer, Airline: "Ryanair",
	})
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.Percentage != 0.95 {
		t.Errorf("airline lookup got %+v, want 0.95", got)
	}

	// Seasonal row exists but is not a default, so a default-only query
	// must not return it.
	got, err = repo.Lookup(models.LoadFactorQuery{
		RouteType: models.RouteShortHaul, Season: models.SeasonSummer, OnlyDefault: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("default-only lookup matched non-default row %+v", got)
	}

	// The all-year default is excluded when defaults are filtered out.
	got, err = repo.Lookup(models.LoadFactorQuery{
		RouteType: models.RouteShortHaul, Season: models.SeasonAllYear, ExcludeDefault: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("non-default lookup matched default row %+v", got)
	}

	// No row at all: (nil, nil), never an error.
	got, err = repo.Lookup(models.LoadFactorQuery{
		RouteType: models.RouteRegional, Season: models.SeasonWinter,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("missing row lookup got %+v, want nil", got)
	}
}

func TestLoadFactorUpsertReplaces(t *testing.T) {
	db := newTestDB(t)
	repo := NewLoadFactorRepository(db)

	lf := models.LoadFactor{RouteType: models.RouteLongHaul, Season: models.SeasonAllYear, Percentage: 0.82, IsDefault: true}
	if err := repo.Upsert(lf); err != nil {
		t.Fatal(err)
	}
	lf.Percentage = 0.80
	if err := repo.Upsert(lf); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Lookup(models.LoadFactorQuery{
		RouteType: models.RouteLongHaul, Season: models.SeasonAllYear, OnlyDefault: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.Percentage != 0.80 || !got.IsDefault {
		t.Errorf("got %+v, want updated default 0.80", got)
	}
}
