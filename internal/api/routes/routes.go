package routes

import (
	"project-roadmap-backend/internal/api/handlers"
	"project-roadmap-backend/internal/api/middleware"
	"project-roadmap-backend/internal/config"
	"project-roadmap-backend/internal/database/models"
	"project-roadmap-backend/internal/metrics"
	"project-roadmap-backend/internal/repository"
	"project-roadmap-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. The metrics
// instance is shared with the advance poller, so the caller owns it.
func SetupRoutes(db *gorm.DB, cfg *config.Config, appMetrics *metrics.Metrics) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.Metrics(appMetrics))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	memberRepo := repository.NewProjectMemberRepository(db)
	phaseRepo := repository.NewPhaseRepository(db)
	templateRepo := repository.NewStageTemplateRepository(db)
	blueprintRepo := repository.NewTaskBlueprintRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	terminalStatuses := make([]models.TaskStatus, 0, len(cfg.TerminalTaskStatuses))
	for _, s := range cfg.TerminalTaskStatuses {
		terminalStatuses = append(terminalStatuses, models.TaskStatus(s))
	}

	// Initialize services
	organizationService := service.NewOrganizationService(organizationRepo, validator)
	projectService := service.NewProjectService(projectRepo, organizationRepo, validator)
	memberService := service.NewProjectMemberService(memberRepo, projectRepo, validator)
	catalogService := service.NewCatalogService(phaseRepo, templateRepo, blueprintRepo, validator)
	roadmapService := service.NewRoadmapService(db, validator, terminalStatuses).WithMetrics(appMetrics)
	taskService := service.NewTaskService(taskRepo, repository.NewProjectStageRepository(db), projectRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	projectHandler := handlers.NewProjectHandler(projectService)
	memberHandler := handlers.NewMemberHandler(memberService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	roadmapHandler := handlers.NewRoadmapHandler(roadmapService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	if cfg.JWTSecret != "" {
		v1.Use(middleware.Auth(cfg.JWTSecret))
	}

	{
		// Organization routes
		organizations := v1.Group("/organizations")
		{
			organizations.GET("", organizationHandler.ListOrganizations)
			organizations.POST("", organizationHandler.CreateOrganization)
			organizations.GET("/:id", organizationHandler.GetOrganization)
			organizations.DELETE("/:id", organizationHandler.DeleteOrganization)
			organizations.GET("/:id/projects", projectHandler.ListProjects)
		}

		// Project routes
		projects := v1.Group("/projects")
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)

			projects.POST("/:id/members", memberHandler.AddMember)
			projects.GET("/:id/members", memberHandler.GetRoster)
			projects.GET("/:id/tasks", taskHandler.ListProjectTasks)

			// Roadmap lifecycle
			projects.POST("/:id/roadmap/bootstrap", roadmapHandler.BootstrapProject)
			projects.POST("/:id/roadmap/attach", roadmapHandler.AttachTemplates)
			projects.GET("/:id/roadmap", roadmapHandler.GetRoadmap)
			projects.POST("/:id/stages", roadmapHandler.CreateStage)
		}

		// Roster member routes
		members := v1.Group("/members")
		{
			members.DELETE("/:id", memberHandler.RemoveMember)
		}

		// Stage transition routes
		stages := v1.Group("/stages")
		{
			stages.POST("/:id/activate", roadmapHandler.ActivateStage)
			stages.POST("/:id/complete", roadmapHandler.CompleteStage)
			stages.GET("/:id/tasks-terminal", roadmapHandler.TasksTerminal)
		}

		// Task routes
		tasks := v1.Group("/tasks")
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PATCH("/:id/status", taskHandler.UpdateTaskStatus)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		// Catalog routes
		phases := v1.Group("/phases")
		{
			phases.GET("", catalogHandler.ListPhases)
			phases.POST("", catalogHandler.CreatePhase)
			phases.GET("/:id/stage-templates", catalogHandler.ListStageTemplates)
		}

		stageTemplates := v1.Group("/stage-templates")
		{
			stageTemplates.POST("", catalogHandler.CreateStageTemplate)
			stageTemplates.GET("/:id/task-blueprints", catalogHandler.ListTaskBlueprints)
		}

		taskBlueprints := v1.Group("/task-blueprints")
		{
			taskBlueprints.POST("", catalogHandler.CreateTaskBlueprint)
		}
	}

	return router
}
