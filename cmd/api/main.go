package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"wealthcast/internal/config"
	"wealthcast/internal/database"
	"wealthcast/internal/handlers"
	"wealthcast/internal/logger"
	"wealthcast/internal/middleware"
	"wealthcast/internal/services"
	"wealthcast/internal/validator"

	_ "wealthcast/internal/docs" // Import swagger docs
)

// @title           Wealthcast API
// @version         1.0
// @description     Wealthcast projects and compares the long-term value of different investments: securities, rental property, precious metals, and fixed income.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	auditService := services.NewAuditService(db)
	scenarioService := services.NewScenarioService(db)
	projectionService := services.NewProjectionService(scenarioService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	scenarioHandler := handlers.NewScenarioHandler(scenarioService, auditService)
	projectionHandler := handlers.NewProjectionHandler(projectionService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Stateless projection previews, no account needed
	projections := v1.Group("/projections")
	projections.POST("/security", projectionHandler.PreviewSecurity)
	projections.POST("/rental-property", projectionHandler.PreviewRentalProperty)
	projections.POST("/precious-metal", projectionHandler.PreviewPreciousMetal)
	projections.POST("/fixed-income", projectionHandler.PreviewFixedIncome)

	// Shared scenarios are readable by token without authentication
	v1.GET("/shared/:token", projectionHandler.ProjectShared)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Scenario routes
	scenarios := protected.Group("/scenarios")
	scenarios.POST("", scenarioHandler.CreateScenario)
	scenarios.GET("", scenarioHandler.GetUserScenarios)
	scenarios.GET("/:id", scenarioHandler.GetScenarioByID)
	scenarios.PUT("/:id", scenarioHandler.UpdateScenario)
	scenarios.DELETE("/:id", scenarioHandler.DeleteScenario)
	scenarios.POST("/:id/assets", scenarioHandler.AddAsset)
	scenarios.PUT("/:id/assets/:assetID", scenarioHandler.UpdateAsset)
	scenarios.DELETE("/:id/assets/:assetID", scenarioHandler.RemoveAsset)
	scenarios.POST("/:id/share", scenarioHandler.ShareScenario)
	scenarios.DELETE("/:id/share", scenarioHandler.RevokeShare)
	scenarios.GET("/:id/projection", projectionHandler.ProjectScenario)

	log.Infof("Starting Wealthcast backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
