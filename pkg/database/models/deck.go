package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Deck represents a tarot deck, either a built-in one or a user-created
// custom deck assembled from uploaded artwork.
type Deck struct {
	ID               uuid.UUID `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	Description      string    `gorm:"type:text" json:"description"`
	Theme            string    `json:"theme"`
	CardBackImageURL string    `json:"cardBackImageUrl"`
	IsCustom         bool      `gorm:"default:false" json:"isCustom"`
	CreatedAt        time.Time `json:"createdAt"`
}

// TableName returns the table name for Deck
func (Deck) TableName() string {
	return "decks"
}

func (d *Deck) BeforeCreate(*gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
