package server

import (
	"github.com/google/uuid"
	"github.com/latoulicious/arcanum/pkg/database/models"
)

// Store interfaces consumed by the HTTP handlers. The gorm repositories
// satisfy them in production; tests substitute in-memory fakes.

type DeckStore interface {
	GetAllDecks() ([]models.Deck, error)
	GetDeckByID(id uuid.UUID) (*models.Deck, error)
	CreateDeck(deck *models.Deck) error
	UpdateDeck(id uuid.UUID, fields map[string]interface{}) (*models.Deck, error)
	DeleteDeck(id uuid.UUID) error
}

type CardStore interface {
	GetCardsByDeck(deckID uuid.UUID) ([]models.Card, error)
	GetCardByID(id uuid.UUID) (*models.Card, error)
	CreateCard(card *models.Card) error
	UpdateCard(id uuid.UUID, fields map[string]interface{}) (*models.Card, error)
	DeleteCard(id uuid.UUID) error
}

type UploadStore interface {
	CreateUpload(upload *models.Upload) error
	GetUploadsByDeck(deckID uuid.UUID) ([]models.Upload, error)
	DeleteUpload(id uuid.UUID) error
}

type ReadingStore interface {
	CreateReading(reading *models.Reading) error
	GetRecentReadings(limit int) ([]models.Reading, error)
}

// DailySource exposes the scheduler's current card-of-the-day draw.
type DailySource interface {
	Current() (*models.Card, *models.Reading, error)
}
