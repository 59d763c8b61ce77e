package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomizationOutput pairs the review record with its backing order.
type CustomizationOutput struct {
	Request *entity.CustomizationRequest `json:"request"`
	Order   *entity.Order                `json:"order"`
}

// CustomizationUsecase runs the embroidery request workflow.
type CustomizationUsecase interface {
	// Submit creates a zero-priced CUST- order; userID is nil for guests.
	Submit(ctx context.Context, userID *uuid.UUID, sub *entity.CustomizationSubmission) (*CustomizationOutput, error)
	List(ctx context.Context, status entity.CustomizationStatus) ([]*entity.CustomizationRequest, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*entity.CustomizationRequest, error)
	Review(ctx context.Context, id uuid.UUID, status entity.CustomizationStatus, notes string) (*entity.CustomizationRequest, error)
	// Quote prices the request, marks it reviewed and notifies the owner.
	Quote(ctx context.Context, id uuid.UUID, price decimal.Decimal) (*CustomizationOutput, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
