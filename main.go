// File: velora/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"velora/config"
	"velora/cron"
	"velora/database"
	listingRepoPkg "velora/database/repository/listing"
	profileRepoPkg "velora/database/repository/profile"
	reservationRepoPkg "velora/database/repository/reservation"
	"velora/handlers"
	"velora/middleware"
	"velora/routes"
	"velora/services/booking"
	"velora/services/notification"
	"velora/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	reservations := reservationRepoPkg.NewMongoReservationRepo()
	profiles := profileRepoPkg.NewMongoProfileRepo()
	listings := listingRepoPkg.NewMongoListingRepo()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := reservations.EnsureIndexes(ctx); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure reservation indexes: %v", err)
		}
		cancel()
	}

	// outbound notification queue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()

	notificationService := notification.NewDefaultNotificationService(profiles)
	cron.InitNotifyWorker(notificationService)

	// services.
	bookingService := &booking.DefaultBookingService{
		Reservations: reservations,
		Listings:     listings,
		Availability: &booking.AvailabilityResolver{
			Profiles: profiles,
			Cache:    utils.GetCacheClient(),
			CacheTTL: time.Duration(config.AppConfig.PolicyCacheTTLSeconds) * time.Second,
		},
		Notifier: notification.NewAsynqDispatcher(asynqClient),
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CreateReservation:  bookingHandler.CreateReservation,
		GetReservation:     bookingHandler.GetReservation,
		ListMyReservations: bookingHandler.ListMyReservations,
		ListSchedule:       bookingHandler.ListSchedule,
		ConfirmReservation: bookingHandler.ConfirmReservation,
		DeclineReservation: bookingHandler.DeclineReservation,
		CancelReservation:  bookingHandler.CancelReservation,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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
