// File: hotelops/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotelops/config"
	"hotelops/cron"
	"hotelops/database"
	roomblockRepo "hotelops/database/repository/roomblock"
	"hotelops/handlers"
	"hotelops/middleware"
	"hotelops/routes"
	"hotelops/services/reporting"
	"hotelops/services/roomblock"
	"hotelops/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	blockRepo := roomblockRepo.NewMongoRoomBlockRepo()

	// services.
	blockService, err := roomblock.NewDefaultRoomBlockService(
		blockRepo,
		utils.GetCacheClient(),
		config.AppConfig.DefaultRoomRate,
		time.Duration(config.AppConfig.StatsCacheTTLSeconds)*time.Second,
		logger,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize room block service: %v", err)
	}
	reporter := reporting.NewReporter(blockService.Registry(), config.AppConfig.DefaultRoomRate)

	// Background workers.
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	cron.StartRegistryRefresh(workerCtx, blockService, logger)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		RoomBlock: handlers.NewRoomBlockHandler(blockService, logger),
		Timeline:  handlers.NewTimelineHandler(blockService, reporter, logger),
	}
	routes.RegisterRoutes(router, handlerBundle)

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

	stopWorkers()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
