package database

import (
	"github.com/latoulicious/arcanum/pkg/database/models"
	"github.com/latoulicious/arcanum/pkg/tarot"
	"gorm.io/gorm"
)

// Seed creates the default Rider-Waite deck with a handful of sample Major
// Arcana cards when the deck table is empty. Safe to call on every startup.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Deck{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	deck := &models.Deck{
		Name:             "Rider-Waite Classic",
		Description:      "The traditional and most widely recognized tarot deck with rich symbolism and detailed artwork.",
		Theme:            "classic",
		CardBackImageURL: "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
		IsCustom:         false,
	}
	if err := db.Create(deck).Error; err != nil {
		return err
	}

	sampleCards := []struct {
		name     string
		number   int
		meaning  string
		keywords []string
		imageURL string
	}{
		{
			name:     "The Fool",
			number:   0,
			meaning:  "New beginnings, innocence, spontaneity, and a free spirit. The Fool represents the start of a journey and the courage to step into the unknown.",
			keywords: []string{"New beginnings", "Innocence", "Adventure", "Trust"},
			imageURL: "https://images.unsplash.com/photo-1551029506-0807df4e2031?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
		},
		{
			name:     "The Magician",
			number:   1,
			meaning:  "Manifestation, resourcefulness, power, and inspired action. The Magician represents the ability to turn dreams into reality.",
			keywords: []string{"Manifestation", "Power", "Skill", "Concentration"},
			imageURL: "https://images.unsplash.com/photo-1540747913346-19e32dc3e97e?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
		},
		{
			name:     "The High Priestess",
			number:   2,
			meaning:  "Intuition, sacred knowledge, divine feminine, and the subconscious mind. She represents inner wisdom and mysteries.",
			keywords: []string{"Intuition", "Mystery", "Subconscious", "Wisdom"},
			imageURL: "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
		},
	}

	for _, sample := range sampleCards {
		number := sample.number
		card := &models.Card{
			DeckID:         deck.ID,
			Name:           sample.name,
			Arcana:         string(tarot.ArcanaMajor),
			Number:         &number,
			ImageURL:       sample.imageURL,
			UprightMeaning: sample.meaning,
			Keywords:       sample.keywords,
		}
		if err := db.Create(card).Error; err != nil {
			return err
		}
	}

	return nil
}
