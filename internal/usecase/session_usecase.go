package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase exposes the caller's authenticated state.
type SessionUsecase interface {
	GetSession(ctx context.Context, userID uuid.UUID) (*entity.Session, error)
	RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error
	// PurgeExpired removes expired refresh tokens and returns how many went.
	PurgeExpired(ctx context.Context) (int64, error)
}
