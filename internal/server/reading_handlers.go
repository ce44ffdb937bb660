package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/latoulicious/arcanum/internal/scheduler"
	"github.com/latoulicious/arcanum/pkg/database/models"
)

type readingRequest struct {
	CardID         string `json:"cardId"`
	Interpretation string `json:"interpretation"`
}

func (s *Server) handleGetReadings(c echo.Context) error {
	limit := 10
	if raw := c.QueryParam("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	readings, err := s.readings.GetRecentReadings(limit)
	if err != nil {
		s.logger.Error("Failed to fetch readings", err, nil)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch readings"})
	}
	return c.JSON(http.StatusOK, readings)
}

func (s *Server) handleCreateReading(c echo.Context) error {
	var req readingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid reading data"})
	}

	cardID, err := uuid.Parse(req.CardID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid reading data"})
	}

	reading := &models.Reading{
		CardID:         cardID,
		Interpretation: req.Interpretation,
		Timestamp:      time.Now(),
	}
	if err := s.readings.CreateReading(reading); err != nil {
		s.logger.Error("Failed to create reading", err, map[string]interface{}{"card_id": cardID.String()})
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to create reading"})
	}
	return c.JSON(http.StatusCreated, reading)
}

func (s *Server) handleCardOfTheDay(c echo.Context) error {
	if s.daily == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "No daily card drawn yet"})
	}

	card, reading, err := s.daily.Current()
	if err != nil {
		if errors.Is(err, scheduler.ErrNoDraw) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "No daily card drawn yet"})
		}
		s.logger.Error("Failed to fetch card of the day", err, nil)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch card of the day"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"card":    card,
		"reading": reading,
	})
}
