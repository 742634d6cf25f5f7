package main

import (
	"log"
	"os"

	"project-roadmap-backend/internal/api/routes"
	"project-roadmap-backend/internal/config"
	"project-roadmap-backend/internal/database"
	"project-roadmap-backend/internal/database/models"
	"project-roadmap-backend/internal/job"
	"project-roadmap-backend/internal/metrics"
	"project-roadmap-backend/internal/repository"
	"project-roadmap-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "project-roadmap-backend/docs" // This is needed for swag
)

//	@title			Project Roadmap Backend API
//	@version		1.0
//	@description	Backend API for agency project delivery roadmaps: phase and stage progression, template-driven task materialization and capability-based scheduling.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router. Metrics are shared with the advance poller so its
	// transitions land in the same counters as API-driven ones.
	appMetrics := metrics.New()
	router := routes.SetupRoutes(db, cfg, appMetrics)

	// Start the background advance poller when enabled
	if cfg.AdvancePollEnabled {
		terminalStatuses := make([]models.TaskStatus, 0, len(cfg.TerminalTaskStatuses))
		for _, s := range cfg.TerminalTaskStatuses {
			terminalStatuses = append(terminalStatuses, models.TaskStatus(s))
		}
		roadmapService := service.NewRoadmapService(db, validator.New(), terminalStatuses).WithMetrics(appMetrics)
		advanceJob := job.NewAdvanceJob(repository.NewProjectStageRepository(db), roadmapService, cfg.AdvancePollSpec)
		if err := advanceJob.Start(); err != nil {
			logrus.Fatal("Failed to start advance poller:", err)
		}
		defer advanceJob.Stop()
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
