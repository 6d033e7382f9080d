package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/airflow-project/airflow-backend-go/internal/database"
	"github.com/airflow-project/airflow-backend-go/internal/models"
)

// Dates in passenger_estimates are stored as YYYY-MM-DD.
const dateLayout = "2006-01-02"

// EstimateRepository handles database operations for hourly passenger
// estimates
type EstimateRepository struct {
	db *sql.DB
}

// NewEstimateRepository creates a new estimate repository
func NewEstimateRepository(db *sql.DB) *EstimateRepository {
	return &EstimateRepository{db: db}
}

// Upsert writes the 24 hourly predictions for (airport, date), keyed by
// (airport, date, hour). Existing rows are updated in place, so re-running
// for the same scope is idempotent. Returns how many rows were created and
// how many were updated.
func (r *EstimateRepository) Upsert(airportCode string, date time.Time, predictions []models.HourlyPrediction) (created, updated int, err error) {
	dateStr := date.Format(dateLayout)

	err = database.Transaction(r.db, func(tx *sql.Tx) error {
		for _, p := range predictions {
			var id int64
			err := tx.QueryRow(
				"SELECT id FROM passenger_estimates WHERE airport = ? AND date = ? AND hour = ?",
				airportCode, dateStr, p.Hour,
			).Scan(&id)

			switch {
			case err == sql.ErrNoRows:
				_, err = tx.Exec(
					`INSERT INTO passenger_estimates (airport, date, hour, passenger_count, confidence_score)
					VALUES (?, ?, ?, ?, ?)`,
					airportCode, dateStr, p.Hour, p.Passengers, p.Confidence,
				)
				if err != nil {
					return fmt.Errorf("failed to insert estimate: %w", err)
				}
				created++
			case err != nil:
				return fmt.Errorf("failed to query estimate: %w", err)
			default:
				_, err = tx.Exec(
					`UPDATE passenger_estimates
					SET passenger_count = ?, confidence_score = ?, updated_at = datetime('now')
					WHERE id = ?`,
					p.Passengers, p.Confidence, id,
				)
				if err != nil {
					return fmt.Errorf("failed to update estimate: %w", err)
				}
				updated++
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return created, updated, nil
}

// ListByAirportDate retrieves the stored hourly estimates for an airport and
// date, ordered by hour
func (r *EstimateRepository) ListByAirportDate(airportCode string, date time.Time) ([]models.PassengerEstimate, error) {
	query := `SELECT id, airport, date, hour, passenger_count, confidence_score
		FROM passenger_estimates
		WHERE airport = ? AND date = ?
		ORDER BY hour ASC`

	rows, err := r.db.Query(query, airportCode, date.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to query estimates: %w", err)
	}
	defer rows.Close()

	var estimates []models.PassengerEstimate
	for rows.Next() {
		var e models.PassengerEstimate
		if err := rows.Scan(&e.ID, &e.Airport, &e.Date, &e.Hour, &e.PassengerCount, &e.ConfidenceScore); err != nil {
			return nil, fmt.Errorf("failed to scan estimate: %w", err)
		}
		estimates = append(estimates, e)
	}

	return estimates, nil
}
