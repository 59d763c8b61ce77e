package model

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrderModel mirrors 'orders'. Line items are a JSON snapshot so later catalog
// edits never change what was bought.
type OrderModel struct {
	ID              uuid.UUID                             `gorm:"type:uuid;primaryKey"`
	OrderNumber     string                                `gorm:"type:varchar(40);uniqueIndex;not null"`
	UserID          *uuid.UUID                            `gorm:"type:uuid;index"`
	Items           datatypes.JSONSlice[entity.OrderItem] `gorm:"not null"`
	Total           decimal.Decimal                       `gorm:"type:numeric(12,2);not null"`
	Status          string                                `gorm:"type:varchar(20);not null;index"`
	CustomerName    string                                `gorm:"type:varchar(100);not null"`
	CustomerPhone   string                                `gorm:"type:varchar(20);not null"`
	CustomerAddress string                                `gorm:"type:text;not null"`
	City            string                                `gorm:"type:varchar(100);not null"`
	State           string                                `gorm:"type:varchar(100);not null"`
	Pincode         string                                `gorm:"type:varchar(10);not null"`
	CreatedAt       time.Time                             `gorm:"index"`
	UpdatedAt       time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}

func (m *OrderModel) BeforeCreate(*gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// CustomizationRequestModel mirrors 'customization_requests'.
type CustomizationRequestModel struct {
	ID             uuid.UUID           `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex"`
	OrderNumber    string              `gorm:"type:varchar(40);not null"`
	UserID         *uuid.UUID          `gorm:"type:uuid;index"`
	ProductID      string              `gorm:"type:varchar(64)"`
	ProductName    string              `gorm:"type:varchar(200)"`
	Image          string              `gorm:"type:text"`
	Text           string              `gorm:"type:text;not null"`
	ContactName    string              `gorm:"type:varchar(100);not null"`
	ContactEmail   string              `gorm:"type:varchar(255)"`
	ContactPhone   string              `gorm:"type:varchar(20);not null"`
	ContactAddress string              `gorm:"type:text"`
	ContactStreet  string              `gorm:"type:text"`
	ContactPincode string              `gorm:"type:varchar(10)"`
	Status         string              `gorm:"type:varchar(20);not null;index"`
	AdminNotes     string              `gorm:"type:text"`
	QuotedPrice    decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	CreatedAt      time.Time           `gorm:"index"`
	UpdatedAt      time.Time
}

func (CustomizationRequestModel) TableName() string {
	return "customization_requests"
}

func (m *CustomizationRequestModel) BeforeCreate(*gorm.DB) error {
	ensureID(&m.ID)

	return nil
}
