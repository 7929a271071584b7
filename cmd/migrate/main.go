package main

import (
	"context"
	"log"
	"os"

	"portuguese101/adapters/excel"
	"portuguese101/internal/config"
	"portuguese101/internal/container"
	"portuguese101/internal/logging"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: migrate <vocabulary.xlsx>")
	}
	workbook := os.Args[1]

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

	data, err := excel.NewVocabularyReader(workbook).Read()
	if err != nil {
		logger.Fatal("failed to read workbook", zap.String("workbook", workbook), zap.Error(err))
	}
	for _, skipped := range data.Skipped {
		logger.Warn("row skipped", zap.String("row", skipped.String()))
	}

	ctx := context.Background()
	deps, err := container.New(appConfig, logger)
	if err != nil {
		logger.Fatal("failed to create container", zap.Error(err))
	}
	if err := deps.Open(ctx); err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer deps.Shutdown()

	summary, err := deps.Importer.Import(ctx, data.Vocabulary)
	if err != nil {
		logger.Fatal("import failed", zap.Error(err))
	}

	log.Printf("Imported %d categories, %d nouns (%d duplicates, %d rejected, %d rows skipped)",
		summary.Categories, summary.NounsInserted, summary.NounsDuplicate, summary.NounsRejected, len(data.Skipped))
}
