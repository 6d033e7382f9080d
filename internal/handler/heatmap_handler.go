package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/airflow-project/airflow-backend-go/internal/service"
	"github.com/airflow-project/airflow-backend-go/pkg/response"
)

// HeatmapHandler handles HTTP requests for heatmap data
type HeatmapHandler struct {
	service *service.HeatmapService
}

// NewHeatmapHandler creates a new heatmap handler
func NewHeatmapHandler(service *service.HeatmapService) *HeatmapHandler {
	return &HeatmapHandler{service: service}
}

// Get handles GET /api/v1/heatmap
func (h *HeatmapHandler) Get(c *gin.Context) {
	airportCode := c.DefaultQuery("airport", "DUB")

	airport, data, err := h.service.Data(airportCode)
	if err != nil {
		h.respondError(c, airportCode, err)
		return
	}

	response.Success(c, gin.H{
		"airport":     airport,
		"point_count": data.PointCount,
		"points":      data.Points,
		"timestamp":   data.Timestamp,
	})
}

// Generate handles POST /api/v1/admin/heatmap/generate
func (h *HeatmapHandler) Generate(c *gin.Context) {
	airportCode := c.DefaultQuery("airport", "DUB")

	date, ok := parseDate(c)
	if !ok {
		return
	}

	count, err := h.service.Generate(airportCode, date)
	if err != nil {
		h.respondError(c, airportCode, err)
		return
	}

	response.Success(c, gin.H{
		"airport":      airportCode,
		"date":         date.Format(dateLayout),
		"points_built": count,
	})
}

// respondError maps service errors onto HTTP statuses
func (h *HeatmapHandler) respondError(c *gin.Context, airportCode string, err error) {
	if errors.Is(err, service.ErrAirportNotFound) {
		codes, _ := h.service.AvailableAirports()
		response.ErrorWith(c, http.StatusNotFound, "Airport "+airportCode+" not found", gin.H{
			"available_airports": codes,
		})
		return
	}
	response.InternalError(c, err.Error())
}
