package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reading records a drawn card and its interpretation text.
type Reading struct {
	ID             uuid.UUID `gorm:"primaryKey" json:"id"`
	CardID         uuid.UUID `gorm:"index;not null" json:"cardId"`
	Interpretation string    `gorm:"type:text" json:"interpretation"`
	Timestamp      time.Time `gorm:"index;not null" json:"timestamp"`
}

// TableName returns the table name for Reading
func (Reading) TableName() string {
	return "readings"
}

func (r *Reading) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
