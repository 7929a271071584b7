package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"portuguese101/internal/config"
	"portuguese101/internal/container"
	"portuguese101/internal/logging"
	"portuguese101/ui"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(appConfig.Log)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := container.New(appConfig, logger)
	if err != nil {
		logger.Fatal("failed to create container", zap.Error(err))
	}
	if err := deps.Open(ctx); err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer deps.Shutdown()

	app, err := ui.NewApp(ui.Config{Port: appConfig.Server.Port}, deps.Categories, deps.Nouns, logger)
	if err != nil {
		logger.Fatal("failed to create vocabulary app", zap.Error(err))
	}

	if err := app.Start(ctx); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
