package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Card represents a single tarot card belonging to a deck.
type Card struct {
	ID              uuid.UUID `gorm:"primaryKey" json:"id"`
	DeckID          uuid.UUID `gorm:"index;not null" json:"deckId"`
	Name            string    `gorm:"not null" json:"name"`
	Arcana          string    `gorm:"not null" json:"arcana"` // "major" or "minor"
	Suit            string    `json:"suit"`                   // "wands", "cups", "swords", "pentacles" for minor arcana
	Number          *int      `json:"number"`                 // 0-21 for major, 1-14 for minor
	ImageURL        string    `json:"imageUrl"`
	UprightMeaning  string    `gorm:"type:text" json:"uprightMeaning"`
	ReversedMeaning string    `gorm:"type:text" json:"reversedMeaning"`
	Keywords        []string  `gorm:"type:jsonb;serializer:json" json:"keywords"`
}

// TableName returns the table name for Card
func (Card) TableName() string {
	return "tarot_cards"
}

func (c *Card) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
