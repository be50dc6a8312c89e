// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KennyLightfoot/hmnp-site-sub021/config"
	"github.com/KennyLightfoot/hmnp-site-sub021/cron"
	"github.com/KennyLightfoot/hmnp-site-sub021/database"
	bookingRepoPkg "github.com/KennyLightfoot/hmnp-site-sub021/database/repository/booking"
	settingsRepoPkg "github.com/KennyLightfoot/hmnp-site-sub021/database/repository/settings"
	"github.com/KennyLightfoot/hmnp-site-sub021/handlers"
	"github.com/KennyLightfoot/hmnp-site-sub021/middleware"
	"github.com/KennyLightfoot/hmnp-site-sub021/routes"
	"github.com/KennyLightfoot/hmnp-site-sub021/services/booking"
	"github.com/KennyLightfoot/hmnp-site-sub021/services/geo"
	ai "github.com/KennyLightfoot/hmnp-site-sub021/services/intelligence"
	"github.com/KennyLightfoot/hmnp-site-sub021/services/tasks"
	"github.com/KennyLightfoot/hmnp-site-sub021/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	settingsRepo := settingsRepoPkg.NewMongoSettingsRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	distanceService := geo.NewGoogleDistanceService(
		config.AppConfig.GoogleAPIKey,
		config.AppConfig.BaseAddress,
		utils.GetDistanceCacheClient(),
		logger,
	)
	reminderScheduler := tasks.NewReminderScheduler()
	bookingService := booking.NewBookingService(
		settingsRepo,
		bookingRepo,
		distanceService,
		utils.GetCacheClient(),
		reminderScheduler,
		logger,
	)

	ctxStore := ai.NewRedisContextStore(utils.GetCacheClient(), 30*time.Minute)
	assistant := ai.NewGeminiAssistant(
		ai.NewGeminiClient(config.AppConfig.GeminiAPIKey),
		ctxStore,
		bookingService,
	)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		SettingsRepo: settingsRepo,

		GetAvailabilityHandler: handlers.GetAvailabilityHandler(bookingService),
		QuoteHandler:           handlers.QuoteHandler(bookingService),

		CreateBookingHandler: handlers.CreateBookingHandler(bookingService),
		GetBookingHandler:    handlers.GetBookingHandler(bookingService),
		CancelBookingHandler: handlers.CancelBookingHandler(bookingService, false),

		ListServicesHandler:  handlers.ListServicesHandler(bookingService),
		AssistantChatHandler: handlers.AssistantChatHandler(assistant),

		AdminLoginHandler:         handlers.AdminLoginHandler(),
		AdminLogoutHandler:        handlers.AdminLogoutHandler(),
		GetSettingsHandler:        handlers.GetSettingsHandler(settingsRepo),
		UpdateSettingsHandler:     handlers.UpdateSettingsHandler(settingsRepo),
		StaffCancelBookingHandler: handlers.CancelBookingHandler(bookingService, true),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the reminder worker.
	cron.InitReminderWorker(bookingRepo)

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
