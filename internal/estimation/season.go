package estimation

import (
	"time"

	"github.com/airflow-project/airflow-backend-go/internal/models"
)

// SeasonFor derives the load-factor season bucket from the target date's
// month: May-September is summer, November-February is winter, everything
// else falls back to all_year.
func SeasonFor(date time.Time) string {
	month := date.Month()
	switch {
	case month >= time.May && month <= time.September:
		return models.SeasonSummer
	case month >= time.November || month <= time.February:
		return models.SeasonWinter
	default:
		return models.SeasonAllYear
	}
}
