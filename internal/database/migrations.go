package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations are applied in version order. Versions already recorded in the
// migrations table are skipped, so re-running Migrate is a no-op.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_airports",
		SQL: `CREATE TABLE IF NOT EXISTS airports (
			iata_code TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			city TEXT NOT NULL,
			country TEXT NOT NULL,
			timezone TEXT NOT NULL DEFAULT 'Europe/Dublin',
			latitude REAL NOT NULL,
			longitude REAL NOT NULL
		)`,
	},
	{
		Version: 2,
		Name:    "create_aircraft_types",
		SQL: `CREATE TABLE IF NOT EXISTS aircraft_types (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			model TEXT NOT NULL UNIQUE,
			manufacturer TEXT NOT NULL,
			total_capacity INTEGER NOT NULL CHECK (total_capacity > 0),
			economy_capacity INTEGER NOT NULL DEFAULT 0,
			business_capacity INTEGER NOT NULL DEFAULT 0,
			first_class_capacity INTEGER NOT NULL DEFAULT 0
		)`,
	},
	{
		Version: 3,
		Name:    "create_load_factors",
		SQL: `CREATE TABLE IF NOT EXISTS load_factors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			route_type TEXT NOT NULL,
			season TEXT NOT NULL DEFAULT 'all_year',
			airline TEXT NOT NULL DEFAULT '',
			percentage REAL NOT NULL CHECK (percentage >= 0.0 AND percentage <= 1.0),
			is_default INTEGER NOT NULL DEFAULT 0,
			source TEXT NOT NULL DEFAULT '',
			UNIQUE (route_type, season, airline)
		)`,
	},
	{
		Version: 4,
		Name:    "create_flights",
		SQL: `CREATE TABLE IF NOT EXISTS flights (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			flight_number TEXT NOT NULL,
			origin TEXT NOT NULL REFERENCES airports(iata_code),
			destination TEXT NOT NULL REFERENCES airports(iata_code),
			departure_time TEXT NOT NULL,
			arrival_time TEXT NOT NULL,
			aircraft_type_id INTEGER REFERENCES aircraft_types(id),
			airline TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'scheduled',
			created_at TEXT NOT NULL DEFAULT (datetime('now')),
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		);
		CREATE INDEX IF NOT EXISTS idx_flights_origin_departure ON flights(origin, departure_time);
		CREATE INDEX IF NOT EXISTS idx_flights_status ON flights(status)`,
	},
	{
		Version: 5,
		Name:    "create_passenger_estimates",
		SQL: `CREATE TABLE IF NOT EXISTS passenger_estimates (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			airport TEXT NOT NULL REFERENCES airports(iata_code),
			date TEXT NOT NULL,
			hour INTEGER NOT NULL CHECK (hour >= 0 AND hour <= 23),
			passenger_count INTEGER NOT NULL CHECK (passenger_count >= 0),
			confidence_score REAL NOT NULL CHECK (confidence_score >= 0.0 AND confidence_score <= 1.0),
			created_at TEXT NOT NULL DEFAULT (datetime('now')),
			updated_at TEXT NOT NULL DEFAULT (datetime('now')),
			UNIQUE (airport, date, hour)
		);
		CREATE INDEX IF NOT EXISTS idx_estimates_airport_date ON passenger_estimates(airport, date)`,
	},
	{
		Version: 6,
		Name:    "create_heatmap_points",
		SQL: `CREATE TABLE IF NOT EXISTS heatmap_points (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			airport TEXT NOT NULL REFERENCES airports(iata_code),
			timestamp TEXT NOT NULL,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			passenger_count INTEGER NOT NULL CHECK (passenger_count >= 0)
		);
		CREATE INDEX IF NOT EXISTS idx_heatmap_airport_timestamp ON heatmap_points(airport, timestamp)`,
	},
}

// Migrate applies all pending migrations to the given database.
func Migrate(db *sql.DB) error {
	if err := initMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedMigrations(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if err := applyMigration(db, m); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}

// initMigrationsTable creates the migrations tracking table
func initMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

// appliedMigrations returns the set of applied migration versions
func appliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, nil
}

// applyMigration runs a single migration and records it in one transaction
func applyMigration(db *sql.DB, m Migration) error {
	return Transaction(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(m.SQL); err != nil {
			return err
		}
		_, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name)
		return err
	})
}
