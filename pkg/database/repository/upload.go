package repository

import (
	"github.com/google/uuid"
	"github.com/latoulicious/arcanum/pkg/database/models"
	"gorm.io/gorm"
)

// UploadRepository handles database operations for the Upload model
type UploadRepository struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) *UploadRepository {
	return &UploadRepository{db: db}
}

func (r *UploadRepository) CreateUpload(upload *models.Upload) error {
	return r.db.Create(upload).Error
}

func (r *UploadRepository) GetUploadsByDeck(deckID uuid.UUID) ([]models.Upload, error) {
	var uploads []models.Upload
	if err := r.db.Where("deck_id = ?", deckID).Order("uploaded_at").Find(&uploads).Error; err != nil {
		return nil, err
	}
	return uploads, nil
}

func (r *UploadRepository) DeleteUpload(id uuid.UUID) error {
	tx := r.db.Delete(&models.Upload{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
