package store

import (
	"github.com/osenco/osen-wc-tingg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormEventLog persists the payment notification audit trail.
type GormEventLog struct {
	DB *gorm.DB
}

func NewGormEventLog(db *gorm.DB) *GormEventLog {
	return &GormEventLog{DB: db}
}

func (l *GormEventLog) Record(event *models.PaymentEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	return l.DB.Create(event).Error
}
