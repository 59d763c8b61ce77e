package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddressModel mirrors 'user_addresses'.
type AddressModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Label     string    `gorm:"type:varchar(50)"`
	FullName  string    `gorm:"type:varchar(100);not null"`
	Phone     string    `gorm:"type:varchar(20);not null"`
	Address   string    `gorm:"type:text;not null"`
	City      string    `gorm:"type:varchar(100);not null"`
	State     string    `gorm:"type:varchar(100);not null"`
	Pincode   string    `gorm:"type:varchar(10);not null"`
	IsDefault bool      `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AddressModel) TableName() string {
	return "user_addresses"
}

func (m *AddressModel) BeforeCreate(*gorm.DB) error {
	ensureID(&m.ID)

	return nil
}
