package routes

import (
	"net/http"

	"shipment-tracker/internal/config"
	"shipment-tracker/internal/delivery/http/handler"
	"shipment-tracker/internal/events"
	"shipment-tracker/internal/infrastructure/database/postgres"
	"shipment-tracker/internal/logger"
	"shipment-tracker/internal/middleware"
	"shipment-tracker/internal/usecase/shipment"
	"shipment-tracker/internal/usecase/user"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(cfg *config.Config, db *postgres.DB, notifier events.Notifier) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	userRepository := postgres.NewUserRepository(db)
	userService := user.NewService(userRepository, cfg)
	userHandler := handler.NewUserHandler(userService)

	shipmentRepository := postgres.NewShipmentRepository(db)
	generator := shipment.NewNumberGenerator(shipmentRepository, cfg.Tracking.Prefix)
	shipmentService := shipment.NewService(shipmentRepository, generator, notifier)
	shipmentHandler := handler.NewShipmentHandler(shipmentService)

	v1 := router.Group("/api/v1")
	{
		userHandler.RegisterPublicRoutes(v1)
		shipmentHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			userHandler.RegisterProfileRoutes(protected)

			staff := protected.Group("")
			staff.Use(middleware.StaffOnly())
			{
				shipmentHandler.RegisterStaffRoutes(staff)
			}

			admin := protected.Group("")
			admin.Use(middleware.AdminOnly())
			{
				userHandler.RegisterAdminRoutes(admin)
				shipmentHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	logger.Info("All routes initialized")
	return router
}
