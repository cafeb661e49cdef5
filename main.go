// File: groupmeet/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"groupmeet/config"
	"groupmeet/database"
	bookingRepoPkg "groupmeet/database/repository/booking"
	scheduleRepoPkg "groupmeet/database/repository/schedule"
	"groupmeet/handlers"
	"groupmeet/middleware"
	"groupmeet/routes"
	"groupmeet/services/auth"
	"groupmeet/services/availability"
	"groupmeet/services/group"
	"groupmeet/services/timetable"
	"groupmeet/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
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
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	groupService := &group.DefaultGroupService{
		Repo: scheduleRepo,
	}
	timetableService := &timetable.DefaultTimetableService{
		Repo: scheduleRepo,
	}
	authService := &auth.DefaultAuthService{
		AuthCache: utils.GetAuthCacheClient(),
	}
	availabilityEngine := &availability.DefaultAvailabilityEngine{
		Groups:     groupService,
		Bookings:   bookingRepo,
		Cache:      utils.GetCacheClient(),
		Policy:     config.PersonalPolicy(),
		Strictness: availability.ParseStrictness(config.AppConfig.AvailabilityStrictness),
		CacheTTL:   time.Duration(config.AppConfig.AvailabilityCacheTTL) * time.Second,
	}

	handlerBundle := &routes.HandlerBundle{
		Auth:         handlers.NewAuthHandler(authService),
		Groups:       handlers.NewGroupHandler(groupService),
		Timetables:   handlers.NewTimetableHandler(timetableService),
		Availability: handlers.NewAvailabilityHandler(availabilityEngine),
		Bookings:     handlers.NewBookingHandler(bookingRepo),
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		time.Duration(config.AppConfig.HealthCheckInterval)*time.Second,
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
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
