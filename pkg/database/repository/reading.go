package repository

import (
	"github.com/latoulicious/arcanum/pkg/database/models"
	"gorm.io/gorm"
)

// ReadingRepository handles database operations for the Reading model
type ReadingRepository struct {
	db *gorm.DB
}

func NewReadingRepository(db *gorm.DB) *ReadingRepository {
	return &ReadingRepository{db: db}
}

func (r *ReadingRepository) CreateReading(reading *models.Reading) error {
	return r.db.Create(reading).Error
}

func (r *ReadingRepository) GetRecentReadings(limit int) ([]models.Reading, error) {
	var readings []models.Reading
	if err := r.db.Order("timestamp DESC").Limit(limit).Find(&readings).Error; err != nil {
		return nil, err
	}
	return readings, nil
}
