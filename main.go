package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tembea/config"
	"tembea/cron"
	"tembea/database"
	journeyRepo "tembea/database/repository/journey"
	paymentRepo "tembea/database/repository/payment"
	"tembea/handlers"
	"tembea/middleware"
	"tembea/routes"
	"tembea/services/catalog"
	"tembea/services/notification"
	"tembea/services/planner"
	"tembea/services/tasks"
	"tembea/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	plansRepo := journeyRepo.NewMongoJourneyRepo()
	paymentsRepo := paymentRepo.NewMongoPaymentRepo()

	// external collaborators.
	catalogClient := catalog.NewHTTPClient(
		config.AppConfig.CatalogBaseURL,
		config.AppConfig.CatalogPageLimit,
		time.Duration(config.AppConfig.CatalogTimeoutSec)*time.Second,
		logger,
	)

	redisQueueOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
	reminderScheduler := tasks.NewReminderScheduler(redisQueueOpts, logger)
	defer reminderScheduler.Close()

	// services.
	sessionStore := planner.NewRedisSessionStore(
		utils.GetSessionCacheClient(),
		time.Duration(config.AppConfig.SessionTTLMin)*time.Minute,
	)
	wizardService := &planner.DefaultJourneyWizardService{
		Store:     sessionStore,
		Catalog:   catalogClient,
		Plans:     plansRepo,
		Payments:  paymentsRepo,
		Reminders: reminderScheduler,
		Logger:    logger,
	}

	notificationService := notification.NewDefaultNotificationService(logger)
	cron.InitReminderWorker(notificationService)

	// handlers.
	journeyHandler := handlers.NewJourneyHandler(wizardService, plansRepo, logger)
	paymentHandler := handlers.NewPaymentHandler(paymentsRepo, logger)

	routes.RegisterRoutes(router, journeyHandler, paymentHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
