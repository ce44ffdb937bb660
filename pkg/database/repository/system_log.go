package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/latoulicious/arcanum/pkg/database/models"
	"github.com/latoulicious/arcanum/pkg/logging"
	"gorm.io/gorm"
)

// SystemLogRepository persists centralized log entries. It implements
// logging.LogRepository so it can back a DatabaseLoggerFactory.
type SystemLogRepository struct {
	db *gorm.DB
}

func NewSystemLogRepository(db *gorm.DB) *SystemLogRepository {
	return &SystemLogRepository{db: db}
}

func (r *SystemLogRepository) SaveLog(entry logging.LogEntry) error {
	record := &models.SystemLog{
		ID:        uuid.New(),
		Component: entry.Component,
		Level:     entry.Level,
		Message:   entry.Message,
		Error:     entry.Error,
		Fields:    entry.Fields,
		Timestamp: time.Now(),
	}
	return r.db.Create(record).Error
}
