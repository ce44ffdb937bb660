package server

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/latoulicious/arcanum/pkg/database/models"
	"gorm.io/gorm"
)

type deckRequest struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	Theme            string `json:"theme"`
	CardBackImageURL string `json:"cardBackImageUrl"`
	IsCustom         bool   `json:"isCustom"`
}

// deckUpdateColumns maps JSON field names accepted on PUT to their database
// columns. Anything not listed is silently ignored.
var deckUpdateColumns = map[string]string{
	"name":             "name",
	"description":      "description",
	"theme":            "theme",
	"cardBackImageUrl": "card_back_image_url",
	"isCustom":         "is_custom",
}

func (s *Server) handleGetDecks(c echo.Context) error {
	decks, err := s.decks.GetAllDecks()
	if err != nil {
		s.logger.Error("Failed to fetch decks", err, nil)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch decks"})
	}
	return c.JSON(http.StatusOK, decks)
}

func (s *Server) handleGetDeck(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Deck not found"})
	}

	deck, err := s.decks.GetDeckByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Deck not found"})
		}
		s.logger.Error("Failed to fetch deck", err, map[string]interface{}{"deck_id": id.String()})
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch deck"})
	}
	return c.JSON(http.StatusOK, deck)
}

func (s *Server) handleCreateDeck(c echo.Context) error {
	var req deckRequest
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid deck data"})
	}

	deck := &models.Deck{
		Name:             req.Name,
		Description:      req.Description,
		Theme:            req.Theme,
		CardBackImageURL: req.CardBackImageURL,
		IsCustom:         req.IsCustom,
	}
	if err := s.decks.CreateDeck(deck); err != nil {
		s.logger.Error("Failed to create deck", err, map[string]interface{}{"name": req.Name})
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to create deck"})
	}
	return c.JSON(http.StatusCreated, deck)
}

func (s *Server) handleUpdateDeck(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Deck not found"})
	}

	var body map[string]interface{}
	if err := c.Bind(&body); err != nil || len(body) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid deck data"})
	}

	fields := make(map[string]interface{})
	for key, value := range body {
		if column, ok := deckUpdateColumns[key]; ok {
			fields[column] = value
		}
	}
	if len(fields) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid deck data"})
	}

	deck, err := s.decks.UpdateDeck(id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Deck not found"})
		}
		s.logger.Error("Failed to update deck", err, map[string]interface{}{"deck_id": id.String()})
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to update deck"})
	}
	return c.JSON(http.StatusOK, deck)
}

func (s *Server) handleDeleteDeck(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Deck not found"})
	}

	if err := s.decks.DeleteDeck(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Deck not found"})
		}
		s.logger.Error("Failed to delete deck", err, map[string]interface{}{"deck_id": id.String()})
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to delete deck"})
	}
	return c.NoContent(http.StatusNoContent)
}
