package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartOutput is the cart and its checkout totals.
type CartOutput struct {
	Items  []entity.CartItem `json:"items"`
	Totals entity.CartTotals `json:"totals"`
}

// QuoteLine is one line of a client-held cart.
type QuoteLine struct {
	ProductID uuid.UUID
	Quantity  int
}

// CartUsecase keeps a durable cart per user or guest token.
type CartUsecase interface {
	GetCart(ctx context.Context, owner entity.CartOwner) (*CartOutput, error)
	AddItem(ctx context.Context, owner entity.CartOwner, productID uuid.UUID, qty int) (*CartOutput, error)
	// UpdateQuantity removes the line when qty < 1.
	UpdateQuantity(ctx context.Context, owner entity.CartOwner, productID uuid.UUID, qty int) (*CartOutput, error)
	RemoveItem(ctx context.Context, owner entity.CartOwner, productID uuid.UUID) (*CartOutput, error)
	Clear(ctx context.Context, owner entity.CartOwner) error
	// MergeGuestCart folds a guest cart into the user's cart after sign-in.
	MergeGuestCart(ctx context.Context, userID uuid.UUID, guestToken string) (*CartOutput, error)
	// Quote prices lines against the live catalog without storing anything.
	Quote(ctx context.Context, lines []QuoteLine) (*CartOutput, error)
}
