package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/airflow-project/airflow-backend-go/internal/service"
	"github.com/airflow-project/airflow-backend-go/pkg/response"
)

// FlightHandler handles HTTP requests for flight search
type FlightHandler struct {
	service *service.FlightService
}

// NewFlightHandler creates a new flight handler
func NewFlightHandler(service *service.FlightService) *FlightHandler {
	return &FlightHandler{service: service}
}

// Search handles GET /api/v1/flights/search
func (h *FlightHandler) Search(c *gin.Context) {
	flightNumber := strings.ToUpper(strings.TrimSpace(c.Query("flight_number")))
	airportCode := c.DefaultQuery("airport", "DUB")

	if flightNumber == "" {
		response.BadRequest(c, "Flight number is required")
		return
	}

	date, ok := parseDate(c)
	if !ok {
		return
	}

	detail, recommendation, err := h.service.Search(airportCode, flightNumber, date)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAirportNotFound):
			response.NotFound(c, "Airport "+airportCode+" not found")
		case errors.Is(err, service.ErrFlightNotFound):
			response.ErrorWith(c, http.StatusNotFound,
				"Flight "+flightNumber+" not found for "+date.Format(dateLayout), gin.H{
					"suggestion": "Try EI101, FR201, or check the date",
				})
		default:
			response.InternalError(c, err.Error())
		}
		return
	}

	response.Success(c, gin.H{
		"flight":         detail,
		"recommendation": recommendation,
		"date":           date.Format(dateLayout),
	})
}
