package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Card type tags recorded on uploads. Bulk-deck files always carry
// CardTypeBulkUpload regardless of what they later resolve to.
const (
	CardTypeMajorArcana = "major_arcana"
	CardTypeMinorArcana = "minor_arcana"
	CardTypeCardBack    = "card_back"
	CardTypeBulkUpload  = "bulk_upload"
)

// Upload records a single uploaded artwork file. Uploads are immutable once
// created.
type Upload struct {
	ID           uuid.UUID `gorm:"primaryKey" json:"id"`
	DeckID       uuid.UUID `gorm:"index;not null" json:"deckId"`
	Filename     string    `gorm:"not null" json:"filename"`
	OriginalName string    `gorm:"not null" json:"originalName"`
	FileURL      string    `gorm:"not null" json:"fileUrl"`
	CardType     string    `gorm:"not null" json:"cardType"`
	UploadedAt   time.Time `gorm:"not null" json:"uploadedAt"`
}

// TableName returns the table name for Upload
func (Upload) TableName() string {
	return "custom_uploads"
}

func (u *Upload) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
