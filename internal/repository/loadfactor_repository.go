package repository

import (
	"database/sql"
	"fmt"

	"github.com/airflow-project/airflow-backend-go/internal/models"
)

// LoadFactorRepository handles database operations for load-factor rows.
// It backs the estimation pipeline's LoadFactorSource interface.
type LoadFactorRepository struct {
	db *sql.DB
}

// NewLoadFactorRepository creates a new load factor repository
func NewLoadFactorRepository(db *sql.DB) *LoadFactorRepository {
	return &LoadFactorRepository{db: db}
}

// Lookup resolves one level of the load-factor hierarchy. Returns (nil, nil)
// when no row matches, letting the caller fall through to the next level.
func (r *LoadFactorRepository) Lookup(q models.LoadFactorQuery) (*models.LoadFactor, error) {
	query := `SELECT id, route_type, season, airline, percentage, is_default, source
		FROM load_factors
		WHERE route_type = ? AND season = ? AND airline = ?`
	args := []interface{}{q.RouteType, q.Season, q.Airline}

	if q.OnlyDefault {
		query += " AND is_default = 1"
	}
	if q.ExcludeDefault {
		query += " AND is_default = 0"
	}
	query += " LIMIT 1"

	var lf models.LoadFactor
	var isDefault int
	err := r.db.QueryRow(query, args...).Scan(
		&lf.ID, &lf.RouteType, &lf.Season, &lf.Airline, &lf.Percentage, &isDefault, &lf.Source,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up load factor: %w", err)
	}

	lf.IsDefault = isDefault != 0
	return &lf, nil
}

// Upsert inserts or updates a load-factor row keyed by
// (route_type, season, airline)
func (r *LoadFactorRepository) Upsert(lf models.LoadFactor) error {
	isDefault := 0
	if lf.IsDefault {
		isDefault = 1
	}

	query := `INSERT INTO load_factors (route_type, season, airline, percentage, is_default, source)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(route_type, season, airline) DO UPDATE SET
			percentage = excluded.percentage,
			is_default = excluded.is_default,
			source = excluded.source`

	if _, err := r.db.Exec(query, lf.RouteType, lf.Season, lf.Airline, lf.Percentage, isDefault, lf.Source); err != nil {
		return fmt.Errorf("failed to upsert load factor: %w", err)
	}
	return nil
}
