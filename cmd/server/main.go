package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "rentalcar-backend/internal/api/http"
	"rentalcar-backend/internal/bootstrap"
	"rentalcar-backend/internal/config"
	"rentalcar-backend/internal/jobs"
	"rentalcar-backend/internal/logger"
	"rentalcar-backend/internal/repository/postgres"
	"rentalcar-backend/internal/rules"
	"rentalcar-backend/internal/scheduler"
	"rentalcar-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Rental Car Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Pricing configuration", "premium", cfg.Pricing.Premium, "suv", cfg.Pricing.SUV, "small", cfg.Pricing.Small)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Seed demo data for development databases
	if cfg.Database.Seed {
		if err := bootstrap.Seed(context.Background(), store.CarRepository, store.CustomerRepository); err != nil {
			logger.Error("Failed to seed demo data", "error", err)
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	// Initialize Policies
	pricingPolicy := rules.NewPricingPolicy(cfg.Pricing.Premium, cfg.Pricing.SUV, cfg.Pricing.Small)
	loyaltyPolicy := rules.NewLoyaltyPolicy()

	// Initialize Services
	rentalSvc := service.NewRentalService(
		store.CarRepository,
		store.CustomerRepository,
		store.RentalRepository,
		store,
		pricingPolicy,
		loyaltyPolicy,
	)
	inventorySvc := service.NewInventoryService(store.CarRepository)
	customerSvc := service.NewCustomerService(store.CustomerRepository)

	// Start the overdue-rental report scheduler
	jobRunner := jobs.NewJobRunner(store, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	// Set up HTTP server
	router := httpapi.NewRouter(rentalSvc, inventorySvc, customerSvc)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
