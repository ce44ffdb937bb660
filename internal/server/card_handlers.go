package server

import (
	"errors"
	"math/rand"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/latoulicious/arcanum/pkg/database/models"
	"gorm.io/gorm"
)

type cardRequest struct {
	DeckID          string   `json:"deckId"`
	Name            string   `json:"name"`
	Arcana          string   `json:"arcana"`
	Suit            string   `json:"suit"`
	Number          *int     `json:"number"`
	ImageURL        string   `json:"imageUrl"`
	UprightMeaning  string   `json:"uprightMeaning"`
	ReversedMeaning string   `json:"reversedMeaning"`
	Keywords        []string `json:"keywords"`
}

func (s *Server) handleGetDeckCards(c echo.Context) error {
	deckID, err := uuid.Parse(c.Param("deckId"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Deck not found"})
	}

	cards, err := s.cards.GetCardsByDeck(deckID)
	if err != nil {
		s.logger.Error("Failed to fetch cards", err, map[string]interface{}{"deck_id": deckID.String()})
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch cards"})
	}
	return c.JSON(http.StatusOK, cards)
}

func (s *Server) handleGetCard(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Card not found"})
	}

	card, err := s.cards.GetCardByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Card not found"})
		}
		s.logger.Error("Failed to fetch card", err, map[string]interface{}{"card_id": id.String()})
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch card"})
	}
	return c.JSON(http.StatusOK, card)
}

func (s *Server) handleCreateCard(c echo.Context) error {
	var req cardRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid card data"})
	}

	deckID, err := uuid.Parse(req.DeckID)
	if err != nil || req.Name == "" || (req.Arcana != "major" && req.Arcana != "minor") {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid card data"})
	}

	card := &models.Card{
		DeckID:          deckID,
		Name:            req.Name,
		Arcana:          req.Arcana,
		Suit:            req.Suit,
		Number:          req.Number,
		ImageURL:        req.ImageURL,
		UprightMeaning:  req.UprightMeaning,
		ReversedMeaning: req.ReversedMeaning,
		Keywords:        req.Keywords,
	}
	if err := s.cards.CreateCard(card); err != nil {
		s.logger.Error("Failed to create card", err, map[string]interface{}{"name": req.Name})
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to create card"})
	}
	return c.JSON(http.StatusCreated, card)
}

// cardUpdateColumns maps JSON field names accepted on PUT to their database
// columns. Anything not listed is silently ignored.
var cardUpdateColumns = map[string]string{
	"name":            "name",
	"arcana":          "arcana",
	"suit":            "suit",
	"number":          "number",
	"imageUrl":        "image_url",
	"uprightMeaning":  "upright_meaning",
	"reversedMeaning": "reversed_meaning",
	"keywords":        "keywords",
}

func (s *Server) handleUpdateCard(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Card not found"})
	}

	var body map[string]interface{}
	if err := c.Bind(&body); err != nil || len(body) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid card data"})
	}

	fields := make(map[string]interface{})
	for key, value := range body {
		if column, ok := cardUpdateColumns[key]; ok {
			fields[column] = value
		}
	}
	if len(fields) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid card data"})
	}

	card, err := s.cards.UpdateCard(id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Card not found"})
		}
		s.logger.Error("Failed to update card", err, map[string]interface{}{"card_id": id.String()})
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to update card"})
	}
	return c.JSON(http.StatusOK, card)
}

func (s *Server) handleDeleteCard(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Card not found"})
	}

	if err := s.cards.DeleteCard(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Card not found"})
		}
		s.logger.Error("Failed to delete card", err, map[string]interface{}{"card_id": id.String()})
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to delete card"})
	}
	return c.NoContent(http.StatusNoContent)
}

// handleRandomCard draws one uniformly random card from the deck.
func (s *Server) handleRandomCard(c echo.Context) error {
	deckID, err := uuid.Parse(c.Param("deckId"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "No cards found in deck"})
	}

	cards, err := s.cards.GetCardsByDeck(deckID)
	if err != nil {
		s.logger.Error("Failed to draw random card", err, map[string]interface{}{"deck_id": deckID.String()})
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to draw random card"})
	}
	if len(cards) == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "No cards found in deck"})
	}

	return c.JSON(http.StatusOK, cards[rand.Intn(len(cards))])
}
