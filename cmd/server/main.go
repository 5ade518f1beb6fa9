package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"

	"sportshare-backend/internal/api/rest"
	"sportshare-backend/internal/config"
	"sportshare-backend/internal/jobs"
	"sportshare-backend/internal/logger"
	"sportshare-backend/internal/push"
	"sportshare-backend/internal/repository/postgres"
	"sportshare-backend/internal/scheduler"
	"sportshare-backend/internal/security"
	"sportshare-backend/internal/service"

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
	logger.Info("Starting Sportshare Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

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

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.SendGrid)
	notificationSvc := service.NewNotificationService(store.NotificationRepository)
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.EquipmentRepository,
		store.AvailabilityRepository,
		store.UserRepository,
		notificationSvc,
	)
	calendarSvc := service.NewCalendarService(
		store.EquipmentRepository,
		store.AvailabilityRepository,
		store.BookingRepository,
		cfg.Booking.CalendarWindowDays,
	)
	equipmentSvc := service.NewEquipmentService(
		store.EquipmentRepository,
		store.AvailabilityRepository,
	)

	// Initialize push channel; the server still runs without it
	var pushSender service.PushSender
	if cfg.Firebase.CredentialsFile != "" {
		fcm, err := push.NewFCMSender(context.Background(), cfg.Firebase.CredentialsFile)
		if err != nil {
			logger.Error("Failed to initialize FCM, push disabled", "error", err)
		} else {
			pushSender = fcm
		}
	} else {
		logger.Warn("No Firebase credentials configured, push disabled")
	}

	// Initialize outbox delivery scheduler
	jobRunner := jobs.NewJobRunner(db, store, &jobs.Services{
		Email: emailSvc,
		Push:  pushSender,
	}, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	// Set up HTTP server
	router := rest.NewRouter(tokenManager, bookingSvc, equipmentSvc, calendarSvc, notificationSvc)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
