package repository

import (
	"github.com/google/uuid"
	"github.com/latoulicious/arcanum/pkg/database/models"
	"gorm.io/gorm"
)

// CardRepository handles database operations for the Card model
type CardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

func (r *CardRepository) GetCardsByDeck(deckID uuid.UUID) ([]models.Card, error) {
	var cards []models.Card
	if err := r.db.Where("deck_id = ?", deckID).Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *CardRepository) GetCardByID(id uuid.UUID) (*models.Card, error) {
	var card models.Card
	if err := r.db.First(&card, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *CardRepository) CreateCard(card *models.Card) error {
	return r.db.Create(card).Error
}

// UpdateCard applies a partial update and returns the refreshed record.
func (r *CardRepository) UpdateCard(id uuid.UUID, fields map[string]interface{}) (*models.Card, error) {
	tx := r.db.Model(&models.Card{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetCardByID(id)
}

func (r *CardRepository) DeleteCard(id uuid.UUID) error {
	tx := r.db.Delete(&models.Card{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
