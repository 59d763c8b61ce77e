package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Slug      string    `gorm:"type:varchar(120);uniqueIndex;not null"`
	Image     string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CategoryModel) TableName() string {
	return "categories"
}

func (m *CategoryModel) BeforeCreate(*gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// ProductModel mirrors 'products'. Images is a JSON array of URLs.
type ProductModel struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Name          string                      `gorm:"type:varchar(200);not null"`
	Description   string                      `gorm:"type:text"`
	Price         decimal.Decimal             `gorm:"type:numeric(12,2);not null"`
	OriginalPrice decimal.NullDecimal         `gorm:"type:numeric(12,2)"`
	Discount      *int                        `gorm:"type:integer"`
	Images        datatypes.JSONSlice[string] `gorm:"not null"`
	Category      string                      `gorm:"type:varchar(100);not null;index"`
	CategoryID    *uuid.UUID                  `gorm:"type:uuid;index"`
	Rating        float64                     `gorm:"not null"`
	Reviews       int                         `gorm:"not null"`
	Stock         int                         `gorm:"not null"`
	Featured      bool                        `gorm:"not null"`
	Trending      bool                        `gorm:"not null"`
	IsActive      bool                        `gorm:"not null"`
	CreatedAt     time.Time                   `gorm:"index"`
	UpdatedAt     time.Time
}

func (ProductModel) TableName() string {
	return "products"
}

func (m *ProductModel) BeforeCreate(*gorm.DB) error {
	ensureID(&m.ID)
	if m.Images == nil {
		m.Images = datatypes.JSONSlice[string]{}
	}

	return nil
}

// WishlistModel mirrors 'wishlists'; a product appears at most once per user.
type WishlistModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlists_user_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlists_user_product"`
	CreatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

func (WishlistModel) TableName() string {
	return "wishlists"
}

func (m *WishlistModel) BeforeCreate(*gorm.DB) error {
	ensureID(&m.ID)

	return nil
}
