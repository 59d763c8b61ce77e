package entity

import (
	"time"

	"github.com/google/uuid"
)

// DevicePlatform is the mobile OS of a push-enabled device.
type DevicePlatform string

const (
	DevicePlatformIOS     DevicePlatform = "ios"
	DevicePlatformAndroid DevicePlatform = "android"
	DevicePlatformWeb     DevicePlatform = "web"
)

func (p DevicePlatform) IsValid() bool {
	return p == DevicePlatformIOS || p == DevicePlatformAndroid || p == DevicePlatformWeb
}

// UserDevice is a client registered to receive order pushes.
type UserDevice struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"user_id"`
	FCMToken  string         `json:"fcm_token"`
	DeviceID  string         `json:"device_id"` // Client-generated, stable per install.
	Platform  DevicePlatform `json:"platform"`
	IsActive  bool           `json:"is_active"` // Cleared when FCM rejects the token.
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
