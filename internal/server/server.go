package server

import (
	"context"
	"fmt"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/latoulicious/arcanum/internal/config"
	"github.com/latoulicious/arcanum/pkg/ingest"
	"github.com/latoulicious/arcanum/pkg/logging"
)

// Server wires the HTTP surface to the entity store and the ingestion
// pipeline.
type Server struct {
	Echo *echo.Echo

	cfg      *config.Config
	logger   logging.Logger
	decks    DeckStore
	cards    CardStore
	uploads  UploadStore
	readings ReadingStore
	pipeline *ingest.Pipeline
	daily    DailySource
}

// Options collects the collaborators a Server needs.
type Options struct {
	Config   *config.Config
	Logger   logging.Logger
	Decks    DeckStore
	Cards    CardStore
	Uploads  UploadStore
	Readings ReadingStore
	Pipeline *ingest.Pipeline
	Daily    DailySource
}

// New builds the server and registers all routes.
func New(opts Options) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	s := &Server{
		Echo:     e,
		cfg:      opts.Config,
		logger:   opts.Logger,
		decks:    opts.Decks,
		cards:    opts.Cards,
		uploads:  opts.Uploads,
		readings: opts.Readings,
		pipeline: opts.Pipeline,
		daily:    opts.Daily,
	}
	s.initRoutes()
	return s
}

func (s *Server) initRoutes() {
	api := s.Echo.Group("/api")

	// Deck routes
	api.GET("/decks", s.handleGetDecks)
	api.GET("/decks/:id", s.handleGetDeck)
	api.POST("/decks", s.handleCreateDeck)
	api.PUT("/decks/:id", s.handleUpdateDeck)
	api.DELETE("/decks/:id", s.handleDeleteDeck)

	// Card routes
	api.GET("/decks/:deckId/cards", s.handleGetDeckCards)
	api.GET("/decks/:deckId/random-card", s.handleRandomCard)
	api.GET("/cards/:id", s.handleGetCard)
	api.POST("/cards", s.handleCreateCard)
	api.PUT("/cards/:id", s.handleUpdateCard)
	api.DELETE("/cards/:id", s.handleDeleteCard)

	// Reading routes
	api.GET("/readings", s.handleGetReadings)
	api.POST("/readings", s.handleCreateReading)
	api.GET("/card-of-the-day", s.handleCardOfTheDay)

	// Upload routes
	api.GET("/decks/:deckId/uploads", s.handleGetDeckUploads)
	api.DELETE("/uploads/:id", s.handleDeleteUpload)
	api.POST("/upload/card-images", s.handleCardImagesUpload)
	api.POST("/upload/card-back", s.handleCardBackUpload)
	api.POST("/upload/bulk-deck", s.handleBulkDeckUpload)

	// Serve uploaded files
	s.Echo.Static("/uploads", s.cfg.UploadDir)

	s.Echo.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})
}

// Start ensures the upload directory exists and begins serving.
func (s *Server) Start() error {
	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return fmt.Errorf("creating upload directory: %w", err)
	}

	s.logger.Info("HTTP server starting", map[string]interface{}{
		"addr": s.cfg.ListenAddr,
	})
	return s.Echo.Start(s.cfg.ListenAddr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.Echo.Shutdown(ctx)
}
