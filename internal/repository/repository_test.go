package repository

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/airflow-project/airflow-backend-go/internal/database"
	"github.com/airflow-project/airflow-backend-go/internal/models"
)

// newTestDB opens a fresh in-memory database with all migrations applied.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// seedAirport inserts a minimal airport row so foreign keys resolve.
func seedAirport(t *testing.T, db *sql.DB, code, country string) {
	t.Helper()

	repo := NewAirportRepository(db)
	err := repo.Upsert(models.Airport{
		IATACode:  code,
		Name:      code + " Airport",
		City:      code,
		Country:   country,
		Timezone:  "Europe/Dublin",
		Latitude:  53.4213,
		Longitude: -6.2701,
	})
	if err != nil {
		t.Fatalf("failed to seed airport %s: %v", code, err)
	}
}

func TestAirportRepositoryGetByCode(t *testing.T) {
	db := newTestDB(t)
	seedAirport(t, db, "DUB", "Ireland")

	repo := NewAirportRepository(db)

	airport, err := repo.GetByCode("DUB")
	if err != nil {
		t.Fatal(err)
	}
	if airport == nil || airport.IATACode != "DUB" || airport.Country != "Ireland" {
		t.Errorf("got %+v, want DUB/Ireland", airport)
	}

	missing, err := repo.GetByCode("XXX")
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Errorf("unknown code should return nil, got %+v", missing)
	}
}

func TestAirportRepositoryListCodes(t *testing.T) {
	db := newTestDB(t)
	seedAirport(t, db, "SNN", "Ireland")
	seedAirport(t, db, "DUB", "Ireland")
	seedAirport(t, db, "ORK", "Ireland")

	codes, err := NewAirportRepository(db).ListCodes()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"DUB", "ORK", "SNN"}
	if len(codes) != len(want) {
		t.Fatalf("got %d codes, want %d", len(codes), len(want))
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("codes[%d] = %s, want %s", i, codes[i], want[i])
		}
	}
}

func TestAircraftRepositoryUpsertResolvesID(t *testing.T) {
	db := newTestDB(t)
	repo := NewAircraftRepository(db)

	ac := &models.AircraftType{Model: "737-800", Manufacturer: "Boeing", TotalCapacity: 189}
	if err := repo.Upsert(ac); err != nil {
		t.Fatal(err)
	}
	if ac.ID == 0 {
		t.Fatal("upsert should resolve the row ID")
	}

	// Same model again: capacity updates, ID stays stable.
	again := &models.AircraftType{Model: "737-800", Manufacturer: "Boeing", TotalCapacity: 197}
	if err := repo.Upsert(again); err != nil {
		t.Fatal(err)
	}
	if again.ID != ac.ID {
		t.Errorf("re-upsert changed ID from %d to %d", ac.ID, again.ID)
	}

	got, err := repo.GetByModel("737-800")
	if err != nil {
		t.Fatal(err)
	}
	if got.TotalCapacity != 197 {
		t.Errorf("capacity %d after re-upsert, want 197", got.TotalCapacity)
	}
}
