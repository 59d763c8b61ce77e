package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service     *orderService
	txManager   *mockRepo.MockTransactionManager
	orderRepo   *mockRepo.MockOrderRepository
	productRepo *mockRepo.MockProductRepository
	cartStore   *mockSvc.MockCartStore
	feed        *mockSvc.MockChangeFeed
	publisher   *mockSvc.MockEventPublisher
	qrCode      *mockSvc.MockQRCodeService
}

var fixedNow = time.Date(2024, 6, 10, 6, 13, 20, 0, time.UTC)

func createTestOrderService(t *testing.T) orderServiceFixtures {
	f := orderServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		cartStore:   mockSvc.NewMockCartStore(t),
		feed:        mockSvc.NewMockChangeFeed(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		qrCode:      mockSvc.NewMockQRCodeService(t),
	}
	svc, ok := NewOrderService(OrderServiceParams{
		TxManager:   f.txManager,
		OrderRepo:   f.orderRepo,
		ProductRepo: f.productRepo,
		CartStore:   f.cartStore,
		ChangeFeed:  f.feed,
		Publisher:   f.publisher,
		QRCode:      f.qrCode,
		Config:      newTestConfig(),
		Logger:      newTestLogger(),
	}).(*orderService)
	require.True(t, ok)
	svc.now = func() time.Time { return fixedNow }
	f.service = svc

	return f
}

// expectCheckoutTx wires a transaction whose product and order repositories
// are returned for assertions.
func (f orderServiceFixtures) expectCheckoutTx(t *testing.T) (*mockRepo.MockProductRepository, *mockRepo.MockOrderRepository) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txProducts := mockRepo.NewMockProductRepository(t)
	txOrders := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().NewProductRepository().Return(txProducts).Maybe()
	factory.EXPECT().NewOrderRepository().Return(txOrders).Maybe()
	expectTx(f.txManager, factory)

	return txProducts, txOrders
}

func TestOrderService_PlaceOrder_FromCart(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	owner := entity.CartOwner{UserID: &userID}
	product := testProduct(450, 10)

	cart := &entity.Cart{}
	cart.Add(entity.CartProductFrom(product), 2)
	f.cartStore.EXPECT().Load(ctx, owner.Key()).Return(cart, nil)
	f.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{product.ID}).Return([]*entity.Product{product}, nil)

	txProducts, txOrders := f.expectCheckoutTx(t)
	txProducts.EXPECT().DecrementStock(ctx, product.ID, 2).Return(nil)
	txOrders.EXPECT().
		Create(ctx, mock.MatchedBy(func(o *entity.Order) bool {
			return o.Status == entity.OrderStatusPlaced && o.Total.String() == "999"
		})).
		Return(nil)

	f.cartStore.EXPECT().Delete(ctx, owner.Key()).Return(nil)
	f.feed.EXPECT().Publish(ctx, mock.MatchedBy(func(e entity.ChangeEvent) bool {
		return e.Table == entity.TableOrders && e.Type == entity.ChangeInsert
	})).Return(nil)
	f.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(e *entity.OrderEvent) bool { return e.Kind == entity.OrderEventPlaced })).
		Return(nil)

	order, err := f.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{Owner: owner, Customer: validContact()})

	require.NoError(t, err)
	assert.Equal(t, entity.NewOrderNumber(entity.OrderNumberPrefix, fixedNow), order.OrderNumber)
	assert.Equal(t, "999", order.Total.String(), "900 subtotal plus the 99 delivery fee")
	require.Len(t, order.Items, 1)
	assert.Equal(t, "450", order.Items[0].Price.String())
	assert.Equal(t, &userID, order.UserID)
}

func TestOrderService_PlaceOrder_GuestLinesMerged(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()
	product := testProduct(600, 10)

	f.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{product.ID}).Return([]*entity.Product{product}, nil)
	txProducts, txOrders := f.expectCheckoutTx(t)
	txProducts.EXPECT().DecrementStock(ctx, product.ID, 3).Return(nil)
	txOrders.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	f.feed.EXPECT().Publish(ctx, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(errors.New("topic gone"))

	order, err := f.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		Customer: validContact(),
		Lines: []entity.CheckoutLine{
			{ProductID: product.ID, Quantity: 1},
			{ProductID: product.ID, Quantity: 2},
		},
	})

	require.NoError(t, err, "publish failures do not fail checkout")
	assert.Nil(t, order.UserID)
	assert.Equal(t, "1800", order.Total.String())
}

func TestOrderService_PlaceOrder_Rejections(t *testing.T) {
	t.Run("invalid customer", func(t *testing.T) {
		f := createTestOrderService(t)
		customer := validContact()
		customer.Phone = "abc"

		_, err := f.service.PlaceOrder(context.Background(), &usecase.PlaceOrderInput{Customer: customer})

		require.ErrorIs(t, err, domainerrors.ErrInvalidCustomerInfo)
		assert.Contains(t, err.Error(), "phone")
	})

	t.Run("empty cart", func(t *testing.T) {
		f := createTestOrderService(t)
		f.cartStore.EXPECT().Load(mock.Anything, "guest:g").Return(&entity.Cart{}, nil)

		_, err := f.service.PlaceOrder(context.Background(), &usecase.PlaceOrderInput{
			Owner:    entity.CartOwner{GuestToken: "g"},
			Customer: validContact(),
		})

		assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
	})

	t.Run("unknown product", func(t *testing.T) {
		f := createTestOrderService(t)
		f.productRepo.EXPECT().FindByIDs(mock.Anything, mock.Anything).Return([]*entity.Product{}, nil)

		_, err := f.service.PlaceOrder(context.Background(), &usecase.PlaceOrderInput{
			Customer: validContact(),
			Lines:    []entity.CheckoutLine{{ProductID: uuid.New(), Quantity: 1}},
		})

		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})

	t.Run("stock taken concurrently", func(t *testing.T) {
		f := createTestOrderService(t)
		product := testProduct(100, 5)
		f.productRepo.EXPECT().FindByIDs(mock.Anything, mock.Anything).Return([]*entity.Product{product}, nil)
		txProducts, _ := f.expectCheckoutTx(t)
		txProducts.EXPECT().DecrementStock(mock.Anything, product.ID, 5).Return(repository.ErrInsufficientStock)

		_, err := f.service.PlaceOrder(context.Background(), &usecase.PlaceOrderInput{
			Customer: validContact(),
			Lines:    []entity.CheckoutLine{{ProductID: product.ID, Quantity: 5}},
		})

		assert.ErrorIs(t, err, domainerrors.ErrOutOfStock)
	})
}

func TestMergeLines(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	merged := mergeLines([]entity.CheckoutLine{
		{ProductID: a, Quantity: 1},
		{ProductID: b, Quantity: 2},
		{ProductID: a, Quantity: 3},
	})

	assert.Equal(t, []entity.CheckoutLine{{ProductID: a, Quantity: 4}, {ProductID: b, Quantity: 2}}, merged)
}

func TestOrderService_GetOrder_Visibility(t *testing.T) {
	owner := uuid.New()
	userOrder := &entity.Order{ID: uuid.New(), UserID: &owner}
	guestOrder := &entity.Order{ID: uuid.New()}

	tests := []struct {
		name    string
		order   *entity.Order
		viewer  *usecase.Actor
		visible bool
	}{
		{name: "guest order anonymous", order: guestOrder, viewer: nil, visible: true},
		{name: "owner", order: userOrder, viewer: &usecase.Actor{UserID: owner, Role: entity.RoleUser}, visible: true},
		{name: "staff", order: userOrder, viewer: &usecase.Actor{UserID: uuid.New(), Role: entity.RoleModerator}, visible: true},
		{name: "other user", order: userOrder, viewer: &usecase.Actor{UserID: uuid.New(), Role: entity.RoleUser}},
		{name: "anonymous on user order", order: userOrder, viewer: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestOrderService(t)
			f.orderRepo.EXPECT().FindByID(mock.Anything, tt.order.ID).Return(tt.order, nil)

			order, err := f.service.GetOrder(context.Background(), tt.viewer, tt.order.ID)

			if tt.visible {
				require.NoError(t, err)
				assert.Equal(t, tt.order, order)

				return
			}
			assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
		})
	}
}

func TestOrderService_ListOrders_InvalidStatus(t *testing.T) {
	f := createTestOrderService(t)

	_, err := f.service.ListOrders(context.Background(), entity.OrderStatus("lost"))

	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	prev := &entity.Order{ID: uuid.New(), OrderNumber: "ORD-1", UserID: &userID, Status: entity.OrderStatusPlaced}

	f.orderRepo.EXPECT().FindByID(ctx, prev.ID).Return(prev, nil)
	f.orderRepo.EXPECT().UpdateStatus(ctx, prev.ID, entity.OrderStatusShipped).Return(nil)
	f.feed.EXPECT().Publish(ctx, mock.MatchedBy(func(e entity.ChangeEvent) bool {
		return e.Type == entity.ChangeUpdate && e.Old != nil
	})).Return(nil)
	f.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(e *entity.OrderEvent) bool {
			return e.Kind == entity.OrderEventStatusChanged && e.OldStatus == entity.OrderStatusPlaced
		})).
		Return(nil)

	order, err := f.service.UpdateStatus(ctx, prev.ID, entity.OrderStatusShipped)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, order.Status)
	assert.Equal(t, entity.OrderStatusPlaced, prev.Status)
}

func TestOrderService_TrackingQRCode(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New()}

	f.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	f.qrCode.EXPECT().GenerateOrderTrackingQR(order.ID).Return([]byte("png"), nil)

	png, err := f.service.TrackingQRCode(ctx, nil, order.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}
