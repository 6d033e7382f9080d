package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/airflow-project/airflow-backend-go/internal/models"
	"github.com/airflow-project/airflow-backend-go/internal/service"
	"github.com/airflow-project/airflow-backend-go/pkg/response"
)

const dateLayout = "2006-01-02"

// parseDate parses the date query parameter, defaulting to tomorrow. The
// second return value reports whether parsing succeeded; the handler has
// already responded with a 400 when it is false.
func parseDate(c *gin.Context) (time.Time, bool) {
	dateStr := c.Query("date")
	if dateStr == "" {
		return time.Now().AddDate(0, 0, 1), true
	}

	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		response.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
		return time.Time{}, false
	}
	return date, true
}

// PredictionHandler handles HTTP requests for hourly predictions
type PredictionHandler struct {
	service *service.EstimationService
}

// NewPredictionHandler creates a new prediction handler
func NewPredictionHandler(service *service.EstimationService) *PredictionHandler {
	return &PredictionHandler{service: service}
}

// GetHourly handles GET /api/v1/predictions/hourly
func (h *PredictionHandler) GetHourly(c *gin.Context) {
	airportCode := c.DefaultQuery("airport", "DUB")

	date, ok := parseDate(c)
	if !ok {
		return
	}

	report, err := h.service.PredictHourly(airportCode, date)
	if err != nil {
		h.respondError(c, airportCode, err)
		return
	}

	predictions := report.Predictions
	if predictions == nil {
		// No scheduled flights: an empty schedule, not 24 hours of zero
		predictions = []models.HourlyPrediction{}
	}

	response.Success(c, gin.H{
		"airport":     report.Airport,
		"date":        report.Date.Format(dateLayout),
		"predictions": predictions,
		"summary":     report.Summary,
	})
}

// Recompute handles POST /api/v1/admin/estimates/recompute
func (h *PredictionHandler) Recompute(c *gin.Context) {
	airportCode := c.DefaultQuery("airport", "DUB")

	date, ok := parseDate(c)
	if !ok {
		return
	}

	created, updated, err := h.service.RecomputeEstimates(airportCode, date)
	if err != nil {
		h.respondError(c, airportCode, err)
		return
	}

	response.Success(c, gin.H{
		"airport": airportCode,
		"date":    date.Format(dateLayout),
		"created": created,
		"updated": updated,
	})
}

// respondError maps service errors onto HTTP statuses, attaching the list of
// known airports to not-found responses
func (h *PredictionHandler) respondError(c *gin.Context, airportCode string, err error) {
	if errors.Is(err, service.ErrAirportNotFound) {
		codes, _ := h.service.AvailableAirports()
		response.ErrorWith(c, http.StatusNotFound, "Airport "+airportCode+" not found", gin.H{
			"available_airports": codes,
		})
		return
	}
	response.InternalError(c, err.Error())
}
