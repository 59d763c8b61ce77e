package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name      string    `gorm:"type:varchar(100)"`
	Phone     string    `gorm:"type:varchar(20)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Roles []UserRoleModel `gorm:"foreignKey:UserID"`
}

func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) BeforeCreate(*gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// UserRoleModel mirrors 'user_roles'. A user normally has one row.
type UserRoleModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_roles_user_role"`
	Role      string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_user_roles_user_role"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserRoleModel) TableName() string {
	return "user_roles"
}

func (m *UserRoleModel) BeforeCreate(*gorm.DB) error {
	ensureID(&m.ID)

	return nil
}
