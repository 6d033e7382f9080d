package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/airflow-project/airflow-backend-go/internal/config"
	"github.com/airflow-project/airflow-backend-go/internal/handler"
	"github.com/airflow-project/airflow-backend-go/internal/middleware"
)

// Handlers groups the HTTP handlers wired into the router
type Handlers struct {
	Predictions *handler.PredictionHandler
	Flights     *handler.FlightHandler
	Heatmap     *handler.HeatmapHandler
}

// SetupRouter builds the gin engine with middleware and all routes
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Passenger Flow API is running",
		})
	})

	limiter := middleware.NewRateLimiter(60, time.Minute)

	api := r.Group("/api/v1")
	api.Use(limiter.Middleware())
	{
		predictions := api.Group("/predictions")
		{
			predictions.GET("/hourly", h.Predictions.GetHourly)
		}

		flights := api.Group("/flights")
		{
			flights.GET("/search", h.Flights.Search)
		}

		api.GET("/heatmap", h.Heatmap.Get)

		admin := api.Group("/admin")
		admin.Use(middleware.JWTAuth(cfg.JWTSecret))
		{
			admin.POST("/estimates/recompute", h.Predictions.Recompute)
			admin.POST("/heatmap/generate", h.Heatmap.Generate)
		}
	}

	return r
}
