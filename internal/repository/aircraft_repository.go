package repository

import (
	"database/sql"
	"fmt"

	"github.com/airflow-project/airflow-backend-go/internal/models"
)

// AircraftRepository handles database operations for aircraft types
type AircraftRepository struct {
	db *sql.DB
}

// NewAircraftRepository creates a new aircraft repository
func NewAircraftRepository(db *sql.DB) *AircraftRepository {
	return &AircraftRepository{db: db}
}

// GetByModel retrieves an aircraft type by model designation. Returns
// (nil, nil) when the model is unknown.
func (r *AircraftRepository) GetByModel(model string) (*models.AircraftType, error) {
	query := `SELECT id, model, manufacturer, total_capacity,
		economy_capacity, business_capacity, first_class_capacity
		FROM aircraft_types WHERE model = ?`

	var a models.AircraftType
	err := r.db.QueryRow(query, model).Scan(
		&a.ID, &a.Model, &a.Manufacturer, &a.TotalCapacity,
		&a.EconomyCapacity, &a.BusinessCapacity, &a.FirstClassCapacity,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get aircraft type: %w", err)
	}

	return &a, nil
}

// Upsert inserts or updates an aircraft type keyed by model
func (r *AircraftRepository) Upsert(a *models.AircraftType) error {
	query := `INSERT INTO aircraft_types
		(model, manufacturer, total_capacity, economy_capacity, business_capacity, first_class_capacity)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(model) DO UPDATE SET
			manufacturer = excluded.manufacturer,
			total_capacity = excluded.total_capacity,
			economy_capacity = excluded.economy_capacity,
			business_capacity = excluded.business_capacity,
			first_class_capacity = excluded.first_class_capacity`

	if _, err := r.db.Exec(query, a.Model, a.Manufacturer, a.TotalCapacity,
		a.EconomyCapacity, a.BusinessCapacity, a.FirstClassCapacity); err != nil {
		return fmt.Errorf("failed to upsert aircraft type: %w", err)
	}

	// Resolve the row ID for callers that reference the type from flights
	return r.db.QueryRow("SELECT id FROM aircraft_types WHERE model = ?", a.Model).Scan(&a.ID)
}
