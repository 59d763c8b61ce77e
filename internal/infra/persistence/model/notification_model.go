package model

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NotificationModel mirrors 'notifications'. Read applies to personal rows only;
// global rows track readers in NotificationReadModel.
type NotificationModel struct {
	ID        uuid.UUID                                       `gorm:"type:uuid;primaryKey"`
	UserID    *uuid.UUID                                      `gorm:"type:uuid;index"`
	Title     string                                          `gorm:"type:varchar(200);not null"`
	Message   string                                          `gorm:"type:text;not null"`
	Type      string                                          `gorm:"type:varchar(20);not null"`
	IsGlobal  bool                                            `gorm:"not null;index"`
	Read      bool                                            `gorm:"not null"`
	Metadata  datatypes.JSONType[entity.NotificationMetadata] `gorm:"not null"`
	CreatedAt time.Time                                       `gorm:"index"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

func (m *NotificationModel) BeforeCreate(*gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

type NotificationReadModel struct {
	NotificationID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReadAt         time.Time `gorm:"not null"`
}

func (NotificationReadModel) TableName() string {
	return "notification_reads"
}
