package database

import (
	"github.com/latoulicious/arcanum/pkg/database/models"
	"gorm.io/gorm"
)

// Migrate runs the schema auto-migration for all entity tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Deck{},
		&models.Card{},
		&models.Upload{},
		&models.Reading{},
		&models.SystemLog{},
	)
}
