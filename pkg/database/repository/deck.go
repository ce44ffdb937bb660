package repository

import (
	"github.com/google/uuid"
	"github.com/latoulicious/arcanum/pkg/database/models"
	"gorm.io/gorm"
)

// DeckRepository handles database operations for the Deck model
type DeckRepository struct {
	db *gorm.DB
}

func NewDeckRepository(db *gorm.DB) *DeckRepository {
	return &DeckRepository{db: db}
}

func (r *DeckRepository) GetAllDecks() ([]models.Deck, error) {
	var decks []models.Deck
	if err := r.db.Order("created_at").Find(&decks).Error; err != nil {
		return nil, err
	}
	return decks, nil
}

func (r *DeckRepository) GetDeckByID(id uuid.UUID) (*models.Deck, error) {
	var deck models.Deck
	if err := r.db.First(&deck, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &deck, nil
}

func (r *DeckRepository) GetDeckByName(name string) (*models.Deck, error) {
	var deck models.Deck
	if err := r.db.Where("name ILIKE ?", name).First(&deck).Error; err != nil {
		return nil, err
	}
	return &deck, nil
}

func (r *DeckRepository) CreateDeck(deck *models.Deck) error {
	return r.db.Create(deck).Error
}

// UpdateDeck applies a partial update and returns the refreshed record.
// Returns gorm.ErrRecordNotFound when no deck matches the id.
func (r *DeckRepository) UpdateDeck(id uuid.UUID, fields map[string]interface{}) (*models.Deck, error) {
	tx := r.db.Model(&models.Deck{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetDeckByID(id)
}

func (r *DeckRepository) DeleteDeck(id uuid.UUID) error {
	tx := r.db.Delete(&models.Deck{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
