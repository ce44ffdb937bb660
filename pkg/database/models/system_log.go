package models

import (
	"time"

	"github.com/google/uuid"
)

// SystemLog represents a persisted log entry from the centralized logging
// system.
type SystemLog struct {
	ID        uuid.UUID              `gorm:"primaryKey" json:"id"`
	Component string                 `gorm:"index;not null" json:"component"` // "server", "ingest", "scheduler", etc.
	Level     string                 `gorm:"index;not null" json:"level"`     // INFO, ERROR, WARN, DEBUG
	Message   string                 `gorm:"type:text;not null" json:"message"`
	Error     string                 `gorm:"type:text" json:"error"`
	Fields    map[string]interface{} `gorm:"type:jsonb;serializer:json" json:"fields"`
	Timestamp time.Time              `gorm:"index;not null" json:"timestamp"`
}

// TableName returns the table name for SystemLog
func (SystemLog) TableName() string {
	return "system_logs"
}
