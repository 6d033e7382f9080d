package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/airflow-project/airflow-backend-go/internal/database"
	"github.com/airflow-project/airflow-backend-go/internal/models"
)

// HeatmapRepository handles database operations for heatmap density points
type HeatmapRepository struct {
	db *sql.DB
}

// NewHeatmapRepository creates a new heatmap repository
func NewHeatmapRepository(db *sql.DB) *HeatmapRepository {
	return &HeatmapRepository{db: db}
}

// Replace swaps out all density points for an airport in one transaction
func (r *HeatmapRepository) Replace(airportCode string, points []models.HeatmapPoint) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM heatmap_points WHERE airport = ?", airportCode); err != nil {
			return fmt.Errorf("failed to clear heatmap points: %w", err)
		}

		stmt, err := tx.Prepare(
			`INSERT INTO heatmap_points (airport, timestamp, latitude, longitude, passenger_count)
			VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare heatmap insert: %w", err)
		}
		defer stmt.Close()

		for _, p := range points {
			if _, err := stmt.Exec(airportCode, p.Timestamp.Format(timeLayout), p.Latitude, p.Longitude, p.PassengerCount); err != nil {
				return fmt.Errorf("failed to insert heatmap point: %w", err)
			}
		}
		return nil
	})
}

// ListByAirport retrieves all density points for an airport, most recent
// first
func (r *HeatmapRepository) ListByAirport(airportCode string) ([]models.HeatmapPoint, error) {
	query := `SELECT id, airport, timestamp, latitude, longitude, passenger_count
		FROM heatmap_points
		WHERE airport = ?
		ORDER BY timestamp DESC`

	rows, err := r.db.Query(query, airportCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query heatmap points: %w", err)
	}
	defer rows.Close()

	var points []models.HeatmapPoint
	for rows.Next() {
		var p models.HeatmapPoint
		var ts string
		if err := rows.Scan(&p.ID, &p.Airport, &ts, &p.Latitude, &p.Longitude, &p.PassengerCount); err != nil {
			return nil, fmt.Errorf("failed to scan heatmap point: %w", err)
		}
		if p.Timestamp, err = time.Parse(timeLayout, ts); err != nil {
			return nil, fmt.Errorf("failed to parse heatmap timestamp: %w", err)
		}
		points = append(points, p)
	}

	return points, nil
}
