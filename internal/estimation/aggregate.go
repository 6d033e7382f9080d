package estimation

import (
	"github.com/airflow-project/airflow-backend-go/internal/models"
	"github.com/airflow-project/airflow-backend-go/internal/stats"
)

// hourlyBucket accumulates one hour's passenger total and the confidence
// scores of every flight contributing to it.
type hourlyBucket struct {
	Passengers  int
	Confidences []float64
}

// aggregateHourly sums each flight's arrival slots into hour-of-day buckets
// (local wall-clock hour of the slot instant). Hours with no contributions
// are absent from the map.
func aggregateHourly(estimates []models.FlightEstimate) map[int]*hourlyBucket {
	buckets := make(map[int]*hourlyBucket)
	for i := range estimates {
		est := &estimates[i]
		for _, slot := range est.Arrivals {
			hour := slot.Time.Hour()
			b, ok := buckets[hour]
			if !ok {
				b = &hourlyBucket{}
				buckets[hour] = b
			}
			b.Passengers += slot.Passengers
			b.Confidences = append(b.Confidences, est.Confidence)
		}
	}
	return buckets
}

// formatPredictions expands the sparse hourly buckets into exactly 24
// entries, hours 0-23 in order. Hours without flights get a zero count,
// zero confidence and a Low level.
func formatPredictions(buckets map[int]*hourlyBucket) []models.HourlyPrediction {
	predictions := make([]models.HourlyPrediction, 0, 24)
	for hour := 0; hour < 24; hour++ {
		b, ok := buckets[hour]
		if !ok {
			predictions = append(predictions, models.HourlyPrediction{
				Hour:            hour,
				ConfidenceLevel: ConfidenceLevel(0),
			})
			continue
		}
		avg := stats.Round2(stats.Mean(b.Confidences))
		predictions = append(predictions, models.HourlyPrediction{
			Hour:            hour,
			Passengers:      b.Passengers,
			Confidence:      avg,
			ConfidenceLevel: ConfidenceLevel(avg),
		})
	}
	return predictions
}
