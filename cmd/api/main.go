package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"portuguese101/internal/api"
	"portuguese101/internal/config"
	"portuguese101/internal/container"
	"portuguese101/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
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

	gin.SetMode(appConfig.API.GinMode)

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

	handler := api.NewVocabularyHandler(deps.Categories, deps.Nouns, deps.DB, logger)

	srv := &http.Server{
		Addr:              ":" + appConfig.API.Port,
		Handler:           api.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("api shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("starting vocabulary API", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("api server failed", zap.Error(err))
	}
}
