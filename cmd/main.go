package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/latoulicious/arcanum/internal/config"
	"github.com/latoulicious/arcanum/internal/scheduler"
	"github.com/latoulicious/arcanum/internal/server"
	"github.com/latoulicious/arcanum/pkg/database"
	"github.com/latoulicious/arcanum/pkg/database/repository"
	"github.com/latoulicious/arcanum/pkg/ingest"
	"github.com/latoulicious/arcanum/pkg/logging"
)

// ingestStore combines the repositories the ingestion pipeline writes through.
type ingestStore struct {
	*repository.UploadRepository
	*repository.CardRepository
}

// drawStore combines the repositories the daily draw reads and writes.
type drawStore struct {
	*repository.DeckRepository
	*repository.CardRepository
	*repository.ReadingRepository
}

func main() {
	if err := runApplication(); err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}
}

func runApplication() error {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
		// Continue execution as .env file might not exist in production
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewGormDB(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying database: %w", err)
	}
	defer sqlDB.Close()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := database.Seed(db); err != nil {
		return fmt.Errorf("failed to seed default deck: %w", err)
	}

	// Centralized logging: every component logger persists entries through
	// the system_logs table.
	loggerFactory := logging.NewDatabaseLoggerFactory(repository.NewSystemLogRepository(db), cfg.LogLevel)
	logging.SetGlobalLoggerFactory(loggerFactory)

	systemLogger := loggerFactory.CreateLogger("system")
	systemLogger.Info("Centralized logging system initialized successfully", map[string]interface{}{
		"database_connected": true,
	})

	deckRepo := repository.NewDeckRepository(db)
	cardRepo := repository.NewCardRepository(db)
	uploadRepo := repository.NewUploadRepository(db)
	readingRepo := repository.NewReadingRepository(db)

	pipeline := ingest.NewPipeline(
		&ingestStore{UploadRepository: uploadRepo, CardRepository: cardRepo},
		loggerFactory.CreateLogger("ingest"),
	)

	daily := scheduler.NewDailyDraw(
		&drawStore{DeckRepository: deckRepo, CardRepository: cardRepo, ReadingRepository: readingRepo},
		loggerFactory.CreateLogger("scheduler"),
		cfg.DailyDrawCron,
		cfg.DailyDrawDeck,
	)
	if err := daily.Start(); err != nil {
		return fmt.Errorf("failed to start daily draw scheduler: %w", err)
	}
	defer daily.Stop()

	srv := server.New(server.Options{
		Config:   cfg,
		Logger:   loggerFactory.CreateLogger("server"),
		Decks:    deckRepo,
		Cards:    cardRepo,
		Uploads:  uploadRepo,
		Readings: readingRepo,
		Pipeline: pipeline,
		Daily:    daily,
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server stopped: %w", err)
	case <-sc:
	}

	systemLogger.Info("Shutting down gracefully", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		systemLogger.Error("Server shutdown failed", err, nil)
	}

	systemLogger.Info("Application shutdown complete", nil)
	return nil
}
