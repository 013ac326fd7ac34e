package routes

import (
	"fmt"

	"aircraft-factory-backend/internal/api/handlers"
	"aircraft-factory-backend/internal/api/middleware"
	"aircraft-factory-backend/internal/auth"
	"aircraft-factory-backend/internal/config"
	"aircraft-factory-backend/internal/repository"
	"aircraft-factory-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	authService, err := auth.NewAuthServiceFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	return NewRouter(db, repository.NewStore(db), authService, cfg), nil
}

// NewRouter builds the engine from an already constructed store and token validator
func NewRouter(db *gorm.DB, store repository.Store, validator auth.TokenValidator, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	v := service.NewValidator()
	clock := service.SystemClock{}

	// Initialize services
	auditService := service.NewAuditService(store, clock)
	partService := service.NewPartService(store, clock, v)
	assemblyService := service.NewAssemblyService(store, auditService, clock, v)
	aircraftService := service.NewAircraftService(store)
	teamService := service.NewTeamService(store.Teams(), v)
	userService := service.NewUserService(store.Users(), store.Teams(), v)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	partHandler := handlers.NewPartHandler(partService)
	assemblyHandler := handlers.NewAssemblyHandler(assemblyService, auditService)
	aircraftHandler := handlers.NewAircraftHandler(aircraftService)
	teamHandler := handlers.NewTeamHandler(teamService)
	userHandler := handlers.NewUserHandler(userService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(auth.NewAuthMiddleware(validator).RequireAuth())
	{
		v1.GET("/me", userHandler.Me)

		parts := v1.Group("/parts")
		{
			parts.POST("", partHandler.CreatePart)
			parts.GET("", partHandler.ListParts)
			parts.GET("/available/:aircraft_type", partHandler.AvailableParts)
			parts.GET("/:id", partHandler.GetPart)
			parts.POST("/:id/recycle", partHandler.RecyclePart)
		}

		assemblies := v1.Group("/assemblies")
		{
			assemblies.POST("", assemblyHandler.StartAssembly)
			assemblies.GET("", assemblyHandler.ListAssemblies)
			assemblies.GET("/:id", assemblyHandler.GetAssembly)
			assemblies.POST("/:id/parts", assemblyHandler.AddParts)
			assemblies.DELETE("/:id/parts/:part_id", assemblyHandler.RemovePart)
			assemblies.POST("/:id/complete", assemblyHandler.CompleteAssembly)
			assemblies.POST("/:id/cancel", assemblyHandler.CancelAssembly)
			assemblies.GET("/:id/logs", assemblyHandler.ListLogs)
		}

		aircraft := v1.Group("/aircraft")
		{
			aircraft.GET("", aircraftHandler.ListAircraft)
			aircraft.GET("/:id", aircraftHandler.GetAircraft)
		}

		admin := v1.Group("/admin")
		{
			admin.POST("/teams", teamHandler.CreateTeam)
			admin.GET("/teams", teamHandler.ListTeams)
			admin.GET("/teams/:id", teamHandler.GetTeam)
			admin.POST("/users", userHandler.CreateUser)
			admin.GET("/users", userHandler.ListUsers)
			admin.GET("/users/:id", userHandler.GetUser)
			admin.PUT("/users/:id/team", userHandler.AssignTeam)
		}
	}

	return router
}
