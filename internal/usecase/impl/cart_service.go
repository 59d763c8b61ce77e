package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type cartService struct {
	store       service.CartStore
	productRepo repository.ProductRepository
	policy      entity.DeliveryPolicy
	maxQuantity int
	logger      *slog.Logger
}

type CartServiceParams struct {
	fx.In

	Store       service.CartStore
	ProductRepo repository.ProductRepository
	Config      *config.Config
	Logger      *slog.Logger
}

func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		store:       params.Store,
		productRepo: params.ProductRepo,
		policy:      deliveryPolicy(params.Config),
		maxQuantity: params.Config.Checkout.MaxQuantityPerItem,
		logger:      params.Logger,
	}
}

func deliveryPolicy(cfg *config.Config) entity.DeliveryPolicy {
	return entity.DeliveryPolicy{
		FreeThreshold: cfg.Checkout.FreeDeliveryThreshold,
		Fee:           cfg.Checkout.DeliveryFee,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) output(cart *entity.Cart) *usecase.CartOutput {
	items := cart.Items
	if items == nil {
		items = []entity.CartItem{}
	}

	return &usecase.CartOutput{Items: items, Totals: cart.Totals(srv.policy)}
}

func (srv *cartService) load(ctx context.Context, owner entity.CartOwner) (string, *entity.Cart, error) {
	key := owner.Key()
	if key == "" {
		return "", nil, domainerrors.ErrValidationFailed.WithDetails("a signed-in user or a cart id is required")
	}

	cart, err := srv.store.Load(ctx, key)
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to load cart")
	}

	return key, cart, nil
}

func (srv *cartService) save(ctx context.Context, key string, cart *entity.Cart) (*usecase.CartOutput, error) {
	if err := srv.store.Save(ctx, key, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return srv.output(cart), nil
}

func (srv *cartService) GetCart(ctx context.Context, owner entity.CartOwner) (*usecase.CartOutput, error) {
	_, cart, err := srv.load(ctx, owner)
	if err != nil {
		return nil, err
	}

	return srv.output(cart), nil
}

// sellableProduct loads productID and checks that qty units can be sold.
func (srv *cartService) sellableProduct(ctx context.Context, productID uuid.UUID, qty int) (*entity.Product, error) {
	if qty < 1 || qty > srv.maxQuantity {
		return nil, domainerrors.ErrInvalidQuantity.WithDetails("quantity must be between 1 and the per-item limit")
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product")
	}
	if !product.IsActive {
		return nil, domainerrors.ErrProductInactive
	}
	if product.Stock < qty {
		return nil, domainerrors.ErrOutOfStock.WithDetails(product.Name)
	}

	return product, nil
}

func (srv *cartService) AddItem(ctx context.Context, owner entity.CartOwner, productID uuid.UUID, qty int) (*usecase.CartOutput, error) {
	key, cart, err := srv.load(ctx, owner)
	if err != nil {
		return nil, err
	}

	total := cart.Quantity(productID.String()) + qty
	product, err := srv.sellableProduct(ctx, productID, total)
	if err != nil {
		return nil, err
	}

	cart.Add(entity.CartProductFrom(product), qty)

	return srv.save(ctx, key, cart)
}

// UpdateQuantity sets a line's quantity; qty < 1 removes the line.
func (srv *cartService) UpdateQuantity(ctx context.Context, owner entity.CartOwner, productID uuid.UUID, qty int) (*usecase.CartOutput, error) {
	key, cart, err := srv.load(ctx, owner)
	if err != nil {
		return nil, err
	}

	id := productID.String()
	if cart.Quantity(id) == 0 {
		return srv.output(cart), nil
	}

	if qty >= 1 {
		if _, err := srv.sellableProduct(ctx, productID, qty); err != nil {
			return nil, err
		}
	}
	cart.UpdateQuantity(id, qty)

	return srv.save(ctx, key, cart)
}

func (srv *cartService) RemoveItem(ctx context.Context, owner entity.CartOwner, productID uuid.UUID) (*usecase.CartOutput, error) {
	key, cart, err := srv.load(ctx, owner)
	if err != nil {
		return nil, err
	}
	cart.Remove(productID.String())

	return srv.save(ctx, key, cart)
}

func (srv *cartService) Clear(ctx context.Context, owner entity.CartOwner) error {
	key := owner.Key()
	if key == "" {
		return domainerrors.ErrValidationFailed.WithDetails("a signed-in user or a cart id is required")
	}

	if err := srv.store.Delete(ctx, key); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// MergeGuestCart folds the guest cart into the user's cart after sign-in.
// Quantities are capped at the per-item limit and at current stock; products
// that are no longer sellable are dropped.
func (srv *cartService) MergeGuestCart(ctx context.Context, userID uuid.UUID, guestToken string) (*usecase.CartOutput, error) {
	userOwner := entity.CartOwner{UserID: &userID}
	key, cart, err := srv.load(ctx, userOwner)
	if err != nil {
		return nil, err
	}
	if guestToken == "" {
		return srv.output(cart), nil
	}

	guestKey := entity.CartOwner{GuestToken: guestToken}.Key()
	guest, err := srv.store.Load(ctx, guestKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load guest cart")
	}
	if guest.IsEmpty() {
		return srv.output(cart), nil
	}

	for _, item := range guest.Items {
		id, err := uuid.Parse(item.Product.ID)
		if err != nil {
			continue
		}
		product, err := srv.productRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "failed to load product")
		}
		if !product.IsActive {
			continue
		}

		limit := min(srv.maxQuantity, product.Stock) - cart.Quantity(item.Product.ID)
		qty := min(item.Quantity, limit)
		if qty < 1 {
			continue
		}
		cart.Add(entity.CartProductFrom(product), qty)
	}

	out, err := srv.save(ctx, key, cart)
	if err != nil {
		return nil, err
	}

	if err := srv.store.Delete(ctx, guestKey); err != nil {
		srv.log(ctx).Warn("Failed to drop merged guest cart", slog.Any("error", err))
	}
	srv.log(ctx).Info("Guest cart merged", slog.Any("userID", userID), slog.Int("lines", len(guest.Items)))

	return out, nil
}

// Quote prices lines against the live catalog without touching any stored cart.
func (srv *cartService) Quote(ctx context.Context, lines []usecase.QuoteLine) (*usecase.CartOutput, error) {
	cart := &entity.Cart{}
	for _, line := range lines {
		product, err := srv.sellableProduct(ctx, line.ProductID, cart.Quantity(line.ProductID.String())+line.Quantity)
		if err != nil {
			return nil, err
		}
		cart.Add(entity.CartProductFrom(product), line.Quantity)
	}

	return srv.output(cart), nil
}
