// File: telecare/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"

	"telecare/config"
	"telecare/cron"
	"telecare/database"
	appointmentRepo "telecare/database/repository/appointment"
	availabilityRepo "telecare/database/repository/availability"
	feeRepo "telecare/database/repository/fees"
	providerRepo "telecare/database/repository/provider"
	"telecare/handlers"
	"telecare/middleware"
	"telecare/routes"
	"telecare/services/booking"
	"telecare/services/notification"
	"telecare/services/scheduling"
	"telecare/services/tasks"
	"telecare/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.InitAuthCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	provRepo := providerRepo.NewMongoProviderRepo()
	windowRepo := availabilityRepo.NewMongoAvailabilityRepo()
	feesRepo := feeRepo.NewMongoFeeRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()

	// services.
	schedulingService := &scheduling.DefaultSchedulingService{
		AvailabilityRepo: windowRepo,
		FeeRepo:          feesRepo,
	}

	paymentHandler := booking.NewStripePaymentHandler(logger)
	reminderScheduler := tasks.NewAsynqReminderScheduler()

	bookingService := &booking.DefaultBookingSessionService{
		Scheduler:       schedulingService,
		ProviderRepo:    provRepo,
		AppointmentRepo: apptRepo,
		Payments:        paymentHandler,
		Reminders:       reminderScheduler,
		Cache:           utils.GetSessionCacheClient(),
	}

	notificationService := &notification.LogNotificationService{Logger: logger}
	cron.InitReminderWorker(notificationService)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Scheduling: handlers.NewSchedulingHandler(schedulingService),
		Booking:    handlers.NewBookingHandler(bookingService, logger),
		Provider:   handlers.NewProviderHandler(provRepo, windowRepo, feesRepo),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetSessionCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

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
