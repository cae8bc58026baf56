package routes

import (
	"staffing-portal-backend/internal/api/handlers"
	"staffing-portal-backend/internal/api/middleware"
	"staffing-portal-backend/internal/auth"
	"staffing-portal-backend/internal/config"
	"staffing-portal-backend/internal/repository"
	"staffing-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize the store over a single database handle
	store := repository.NewStore(db)

	// Initialize services
	workerService := service.NewWorkerService(store, validator)
	projectService := service.NewProjectService(store, validator)
	teamService := service.NewTeamService(store, validator)
	reportService := service.NewReportService(store)
	transferService := service.NewTransferService(store)

	// Initialize auth services
	authService := auth.NewAuthService(cfg, store.Users(), validator)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	workerHandler := handlers.NewWorkerHandler(workerService)
	projectHandler := handlers.NewProjectHandler(projectService)
	teamHandler := handlers.NewTeamHandler(teamService)
	reportHandler := handlers.NewReportHandler(reportService)
	transferHandler := handlers.NewTransferHandler(transferService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Programmer routes
		programmers := v1.Group("/programmers")
		{
			programmers.GET("", workerHandler.ListProgrammers)
			programmers.POST("", workerHandler.CreateProgrammer)
			programmers.DELETE("/:id", workerHandler.DeleteProgrammer)
		}

		// Leader routes; removal frees the led team and is reserved for admins
		leaders := v1.Group("/leaders")
		{
			leaders.GET("", workerHandler.ListLeaders)
			leaders.POST("", workerHandler.CreateLeader)
			leaders.DELETE("/:id", authMiddleware.RequireAdmin(), workerHandler.DeleteLeader)
		}

		// Worker routes
		workers := v1.Group("/workers")
		{
			workers.GET("/:id", workerHandler.GetWorker)
		}

		// Language routes
		languages := v1.Group("/languages")
		{
			languages.GET("", workerHandler.ListLanguages)
		}

		// Project routes
		projects := v1.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/available-leaders", teamHandler.AvailableLeaders)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
		}

		// Report routes
		reports := v1.Group("/reports")
		{
			reports.GET("/payroll-total", reportHandler.TotalPayroll)
			reports.GET("/top-earners", reportHandler.TopEarners)
			reports.GET("/project-count", reportHandler.ProjectsByType)
			reports.GET("/earliest-project", reportHandler.EarliestProject)
			reports.GET("/programmer-project/:id", reportHandler.ProjectByProgrammer)
			reports.GET("/project-programmers/:id", reportHandler.ProgrammersByProject)
			reports.GET("/framework-programmers/:framework", reportHandler.ProgrammersByFramework)
		}

		// Transfer routes
		transfer := v1.Group("/transfer")
		{
			transfer.GET("/export/:projectId", transferHandler.ExportTeam)
			transfer.POST("/import", transferHandler.ImportTeam)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
