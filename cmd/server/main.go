package main

import (
	"log"
	"time"

	"nola_analytics/internal/config"
	"nola_analytics/internal/database"
	"nola_analytics/internal/handlers"
	"nola_analytics/internal/middleware"
	"nola_analytics/internal/migrations"
	"nola_analytics/internal/redis"
	"nola_analytics/internal/repository"
	"nola_analytics/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	analyticsRepo := repository.NewAnalyticsRepository(db)
	customQueryRepo := repository.NewCustomQueryRepository(db)
	salesRepo := repository.NewSalesRepository(db)
	brandRepo := repository.NewBrandRepository(db)

	// Initialize services
	analyticsService := services.NewAnalyticsService(analyticsRepo, customQueryRepo)
	salesService := services.NewSalesService(salesRepo)
	brandService := services.NewBrandService(brandRepo)

	// Initialize handlers
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	salesHandler := handlers.NewSalesHandler(salesService)
	brandsHandler := handlers.NewBrandsHandler(brandService)
	healthHandler := handlers.NewHealthHandler(db)

	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.Health)

		api.GET("/brands", brandsHandler.GetBrands)
		api.GET("/brands/:brandId/stores", brandsHandler.GetStores)
		api.GET("/brands/:brandId/channels", brandsHandler.GetChannels)

		api.GET("/sales", salesHandler.ListSales)
		api.GET("/sales/summary", salesHandler.Summary)

		analytics := api.Group("/analytics")
		analytics.Use(middleware.Cache(redisClient, cacheTTL))
		{
			analytics.GET("/revenue-by-day", analyticsHandler.RevenueByDay)
			analytics.GET("/top-products", analyticsHandler.TopProducts)
			analytics.GET("/revenue-by-channel", analyticsHandler.RevenueByChannel)
			analytics.GET("/revenue-by-store", analyticsHandler.RevenueByStore)
			analytics.GET("/hourly-distribution", analyticsHandler.HourlyDistribution)
			analytics.GET("/store-performance", analyticsHandler.StorePerformance)
			analytics.GET("/overview", analyticsHandler.Overview)
			analytics.GET("/channel-distribution", analyticsHandler.ChannelDistribution)
			analytics.GET("/product-stats", analyticsHandler.ProductStats)
			analytics.GET("/customer-stats", analyticsHandler.CustomerStats)
			analytics.GET("/temporal/weekly", analyticsHandler.WeeklyDistribution)
			analytics.GET("/temporal/monthly-growth", analyticsHandler.MonthlyGrowth)
			analytics.GET("/product-margins", analyticsHandler.ProductMargins)
			analytics.GET("/delivery-performance", analyticsHandler.DeliveryPerformance)
			analytics.GET("/customer-retention", analyticsHandler.CustomerRetention)
			analytics.GET("/anomalies", analyticsHandler.Anomalies)
			analytics.GET("/top-products-by-weekday", analyticsHandler.TopProductsByWeekday)
			analytics.POST("/custom", analyticsHandler.CustomQuery)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
