package main

import (
	"fmt"
	"log"
	"net/http"

	"localserve/internal/config"
	"localserve/internal/handlers"
	"localserve/internal/middleware"
	"localserve/internal/repositories/mongodb"
	"localserve/internal/services"
	"localserve/pkg/cache"
	"localserve/pkg/database"
	"localserve/pkg/logger"
	"localserve/pkg/payment"
	"localserve/pkg/sms"
	"localserve/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:   cfg.App.LogLevel,
		Format:  cfg.App.LogFormat,
		Output:  "stdout",
		AppName: cfg.App.Name,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer db.Close()

	if err := database.NewMigrator(db.Database).Up(); err != nil {
		appLogger.WithError(err).Fatal("Failed to run migrations")
	}

	// Redis is an optimization, not a dependency: the repositories work
	// without a cache, so a failed connection only logs a warning.
	var cacheService services.CacheService
	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		appLogger.WithError(err).Warn("Redis unavailable, continuing without cache")
	} else {
		cacheService = redisCache
		defer redisCache.Close()
	}

	gateway := payment.NewRazorpayGateway(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)

	var smsProvider sms.SMSProvider
	if cfg.SMS.Enabled {
		smsProvider = sms.NewTwilioProvider(cfg.SMS.TwilioAccountSID, cfg.SMS.TwilioAuthToken, cfg.SMS.TwilioFromNumber)
	}

	// Repositories
	userRepo := mongodb.NewUserRepository(db.Database)
	serviceRepo := mongodb.NewServiceRepository(db.Database)
	requestRepo := mongodb.NewServiceRequestRepository(db.Database)
	billRepo := mongodb.NewBillRepository(db.Database)
	paymentRepo := mongodb.NewPaymentRepository(db.Database, cacheService)
	transferRepo := mongodb.NewTransferRepository(db.Database)
	bankRepo := mongodb.NewBankDetailRepository(db.Database)

	// Services
	notifier := services.NewNotificationService(smsProvider, userRepo, appLogger)
	bookingService := services.NewBookingService(serviceRepo, requestRepo, billRepo, paymentRepo, gateway, notifier, cfg.Razorpay, appLogger)
	settlementService := services.NewSettlementService(requestRepo, billRepo, paymentRepo, transferRepo, gateway, db, notifier, cfg.Razorpay, appLogger)
	payoutService := services.NewPayoutService(transferRepo, bankRepo, gateway, notifier, cfg.Razorpay, appLogger)

	// Handlers
	bookingHandler := handlers.NewBookingHandler(bookingService, appLogger)
	paymentHandler := handlers.NewPaymentHandler(bookingService, settlementService, appLogger)
	transferHandler := handlers.NewTransferHandler(payoutService, appLogger)

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": cfg.App.Version,
		})
	})

	v1 := router.Group("/api/v1")
	{
		routes.SetupBookingRoutes(v1, cfg.Security.JWTSecret, bookingHandler, paymentHandler)
		routes.SetupPayoutRoutes(v1, cfg.Security.JWTSecret, transferHandler)
	}

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	appLogger.Infof("Starting %s on %s", cfg.App.Name, addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		appLogger.WithError(err).Fatal("Server stopped")
	}
}
