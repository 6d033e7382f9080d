package main

import (
	"log"

	"github.com/airflow-project/airflow-backend-go/internal/api"
	"github.com/airflow-project/airflow-backend-go/internal/config"
	"github.com/airflow-project/airflow-backend-go/internal/database"
	"github.com/airflow-project/airflow-backend-go/internal/estimation"
	"github.com/airflow-project/airflow-backend-go/internal/handler"
	"github.com/airflow-project/airflow-backend-go/internal/repository"
	"github.com/airflow-project/airflow-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	db := database.GetDB()

	airportRepo := repository.NewAirportRepository(db)
	flightRepo := repository.NewFlightRepository(db)
	loadFactorRepo := repository.NewLoadFactorRepository(db)
	estimateRepo := repository.NewEstimateRepository(db)
	heatmapRepo := repository.NewHeatmapRepository(db)

	pipeline := estimation.New(flightRepo, loadFactorRepo)

	estimationService := service.NewEstimationService(airportRepo, pipeline, estimateRepo)
	flightService := service.NewFlightService(airportRepo, flightRepo, pipeline)
	heatmapService := service.NewHeatmapService(airportRepo, estimateRepo, heatmapRepo)

	router := api.SetupRouter(cfg, api.Handlers{
		Predictions: handler.NewPredictionHandler(estimationService),
		Flights:     handler.NewFlightHandler(flightService),
		Heatmap:     handler.NewHeatmapHandler(heatmapService),
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
