package repository

import (
	"database/sql"
	"fmt"

	"github.com/airflow-project/airflow-backend-go/internal/models"
)

// AirportRepository handles database operations for airports
type AirportRepository struct {
	db *sql.DB
}

// NewAirportRepository creates a new airport repository
func NewAirportRepository(db *sql.DB) *AirportRepository {
	return &AirportRepository{db: db}
}

// GetByCode retrieves an airport by IATA code. Returns (nil, nil) when the
// airport does not exist.
func (r *AirportRepository) GetByCode(code string) (*models.Airport, error) {
	query := `SELECT iata_code, name, city, country, timezone, latitude, longitude
		FROM airports WHERE iata_code = ?`

	var a models.Airport
	err := r.db.QueryRow(query, code).Scan(
		&a.IATACode, &a.Name, &a.City, &a.Country, &a.Timezone, &a.Latitude, &a.Longitude,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get airport: %w", err)
	}

	return &a, nil
}

// ListCodes returns all known IATA codes, ordered alphabetically
func (r *AirportRepository) ListCodes() ([]string, error) {
	rows, err := r.db.Query("SELECT iata_code FROM airports ORDER BY iata_code")
	if err != nil {
		return nil, fmt.Errorf("failed to query airport codes: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to scan airport code: %w", err)
		}
		codes = append(codes, code)
	}

	return codes, nil
}

// Upsert inserts or replaces an airport record
func (r *AirportRepository) Upsert(a models.Airport) error {
	query := `INSERT INTO airports (iata_code, name, city, country, timezone, latitude, longitude)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(iata_code) DO UPDATE SET
			name = excluded.name,
			city = excluded.city,
			country = excluded.country,
			timezone = excluded.timezone,
			latitude = excluded.latitude,
			longitude = excluded.longitude`

	if _, err := r.db.Exec(query, a.IATACode, a.Name, a.City, a.Country, a.Timezone, a.Latitude, a.Longitude); err != nil {
		return fmt.Errorf("failed to upsert airport: %w", err)
	}
	return nil
}
