package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/sakthiswaran2705/rk-dail-admin/config"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/database"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/logger"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/metrics"
)

// Hàm main
func main() {
	if err := initLogger(); err != nil {
		panic(err)
	}
	defer logger.Shutdown()
	log := logger.GetAppLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client, err := initDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	reg, err := InitCollections(client.Database(cfg.MongoDB_DBName))
	if err != nil {
		log.Fatalf("Failed to initialize collections: %v", err)
	}
	repos, err := newMongoRepositories(reg)
	if err != nil {
		log.Fatalf("Failed to initialize stores: %v", err)
	}
	store, err := initMedia(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize media store: %v", err)
	}

	m := metrics.New()
	app, err := InitFiberApp(cfg, m, buildRoutes(repos, store, m, client)...)
	if err != nil {
		log.Fatalf("Failed to setup routes: %v", err)
	}

	go func() {
		log.WithField("address", cfg.Address).Info("Starting server with HTTP")
		if err := app.Listen(cfg.Address, fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
			log.Fatalf("Error in Fiber Listen: %v", err)
		}
	}()

	// Chờ tín hiệu dừng rồi tắt server, đóng kết nối DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.WithError(err).Error("Server shutdown failed")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = database.CloseInstance(ctx, client)
	log.Info("Server stopped")
}
