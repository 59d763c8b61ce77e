package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type customizationServiceFixtures struct {
	service           *customizationService
	txManager         *mockRepo.MockTransactionManager
	customizationRepo *mockRepo.MockCustomizationRepository
	orderRepo         *mockRepo.MockOrderRepository
	feed              *mockSvc.MockChangeFeed
	publisher         *mockSvc.MockEventPublisher
}

func createTestCustomizationService(t *testing.T) customizationServiceFixtures {
	f := customizationServiceFixtures{
		txManager:         mockRepo.NewMockTransactionManager(t),
		customizationRepo: mockRepo.NewMockCustomizationRepository(t),
		orderRepo:         mockRepo.NewMockOrderRepository(t),
		feed:              mockSvc.NewMockChangeFeed(t),
		publisher:         mockSvc.NewMockEventPublisher(t),
	}
	svc, ok := NewCustomizationService(CustomizationServiceParams{
		TxManager:         f.txManager,
		CustomizationRepo: f.customizationRepo,
		OrderRepo:         f.orderRepo,
		ChangeFeed:        f.feed,
		Publisher:         f.publisher,
		Logger:            newTestLogger(),
	}).(*customizationService)
	require.True(t, ok)
	svc.now = func() time.Time { return fixedNow }
	f.service = svc

	return f
}

func validSubmission() *entity.CustomizationSubmission {
	return &entity.CustomizationSubmission{
		ProductID:   "p-1",
		ProductName: "Hoodie",
		Text:        "Happy birthday",
		Contact: entity.CustomizationContact{
			Name:    "Ravi",
			Phone:   "9876543210",
			Address: "4 Park Street",
			Street:  "Near the lake",
			Pincode: "700016",
		},
	}
}

func tableIs(table string, changeType entity.ChangeType) any {
	return mock.MatchedBy(func(e entity.ChangeEvent) bool {
		return e.Table == table && e.Type == changeType
	})
}

func TestCustomizationService_Submit_Success(t *testing.T) {
	f := createTestCustomizationService(t)
	ctx := context.Background()
	userID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrders := mockRepo.NewMockOrderRepository(t)
	txRequests := mockRepo.NewMockCustomizationRepository(t)
	factory.EXPECT().NewOrderRepository().Return(txOrders)
	factory.EXPECT().NewCustomizationRepository().Return(txRequests)
	expectTx(f.txManager, factory)
	txOrders.EXPECT().
		Create(ctx, mock.MatchedBy(func(o *entity.Order) bool { return o.IsCustomization() && o.Total.IsZero() })).
		Return(nil)
	txRequests.EXPECT().
		Create(ctx, mock.MatchedBy(func(r *entity.CustomizationRequest) bool { return r.OrderID != uuid.Nil })).
		Return(nil)

	f.feed.EXPECT().Publish(ctx, tableIs(entity.TableOrders, entity.ChangeInsert)).Return(nil)
	f.feed.EXPECT().Publish(ctx, tableIs(entity.TableCustomizationRequests, entity.ChangeInsert)).Return(nil)

	out, err := f.service.Submit(ctx, &userID, validSubmission())

	require.NoError(t, err)
	assert.Equal(t, entity.NewOrderNumber(entity.CustomizationNumberPrefix, fixedNow), out.Order.OrderNumber)
	assert.Equal(t, out.Order.ID, out.Request.OrderID)
	assert.Equal(t, entity.CustomizationStatusPending, out.Request.Status)
	assert.Equal(t, entity.ToBeConfirmed, out.Order.Customer.City)
}

func TestCustomizationService_Submit_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *entity.CustomizationSubmission)
		field  string
	}{
		{name: "missing text", mutate: func(s *entity.CustomizationSubmission) { s.Text = "  " }, field: "text"},
		{name: "missing name", mutate: func(s *entity.CustomizationSubmission) { s.Contact.Name = "" }, field: "name"},
		{name: "bad phone", mutate: func(s *entity.CustomizationSubmission) { s.Contact.Phone = "98765" }, field: "phone"},
		{name: "bad email", mutate: func(s *entity.CustomizationSubmission) { s.Contact.Email = "ravi@" }, field: "email"},
		{name: "missing address", mutate: func(s *entity.CustomizationSubmission) { s.Contact.Address = "" }, field: "address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestCustomizationService(t)
			sub := validSubmission()
			tt.mutate(sub)

			_, err := f.service.Submit(context.Background(), nil, sub)

			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestCustomizationService_List_InvalidStatus(t *testing.T) {
	f := createTestCustomizationService(t)

	_, err := f.service.List(context.Background(), entity.CustomizationStatus("archived"))

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCustomizationStatus)
}

func TestCustomizationService_Review(t *testing.T) {
	f := createTestCustomizationService(t)
	ctx := context.Background()
	req := &entity.CustomizationRequest{ID: uuid.New(), Status: entity.CustomizationStatusPending}

	f.customizationRepo.EXPECT().FindByID(ctx, req.ID).Return(req, nil)
	f.customizationRepo.EXPECT().Update(ctx, req).Return(nil)
	f.feed.EXPECT().Publish(ctx, tableIs(entity.TableCustomizationRequests, entity.ChangeUpdate)).Return(nil)

	updated, err := f.service.Review(ctx, req.ID, entity.CustomizationStatusApproved, " looks good ")

	require.NoError(t, err)
	assert.Equal(t, entity.CustomizationStatusApproved, updated.Status)
	assert.Equal(t, "looks good", updated.AdminNotes)
}

func TestCustomizationService_Quote_NotifiesOwner(t *testing.T) {
	f := createTestCustomizationService(t)
	ctx := context.Background()
	userID := uuid.New()
	order := entity.NewCustomizationOrder(*validSubmission(), &userID, fixedNow)
	req := &entity.CustomizationRequest{
		ID:          uuid.New(),
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		UserID:      &userID,
		ProductName: "Hoodie",
		Status:      entity.CustomizationStatusPending,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRequests := mockRepo.NewMockCustomizationRepository(t)
	txOrders := mockRepo.NewMockOrderRepository(t)
	txNotifications := mockRepo.NewMockNotificationRepository(t)
	factory.EXPECT().NewCustomizationRepository().Return(txRequests)
	factory.EXPECT().NewOrderRepository().Return(txOrders)
	factory.EXPECT().NewNotificationRepository().Return(txNotifications)
	expectTx(f.txManager, factory)

	txRequests.EXPECT().FindByID(ctx, req.ID).Return(req, nil)
	txOrders.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	txOrders.EXPECT().
		UpdatePricing(ctx, mock.MatchedBy(func(o *entity.Order) bool { return o.Total.String() == "750" })).
		Return(nil)
	txRequests.EXPECT().Update(ctx, req).Return(nil)
	txNotifications.EXPECT().
		Create(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.Type == entity.NotificationTypePriceUpdate && n.UserID != nil && *n.UserID == userID
		})).
		Return(nil)

	f.feed.EXPECT().Publish(ctx, tableIs(entity.TableOrders, entity.ChangeUpdate)).Return(nil)
	f.feed.EXPECT().Publish(ctx, tableIs(entity.TableCustomizationRequests, entity.ChangeUpdate)).Return(nil)
	f.feed.EXPECT().Publish(ctx, tableIs(entity.TableNotifications, entity.ChangeInsert)).Return(nil)
	f.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(e *entity.OrderEvent) bool { return e.Kind == entity.OrderEventQuoted })).
		Return(nil)

	out, err := f.service.Quote(ctx, req.ID, decimal.NewFromInt(750))

	require.NoError(t, err)
	assert.Equal(t, entity.CustomizationStatusReviewed, out.Request.Status)
	require.NotNil(t, out.Request.QuotedPrice)
	assert.Equal(t, "750", out.Request.QuotedPrice.String())
}

func TestCustomizationService_Quote_NegativePrice(t *testing.T) {
	f := createTestCustomizationService(t)

	_, err := f.service.Quote(context.Background(), uuid.New(), decimal.NewFromInt(-1))

	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuote)
}

func TestCustomizationService_Quote_ZeroPrice(t *testing.T) {
	f := createTestCustomizationService(t)

	out, err := f.service.Quote(context.Background(), uuid.New(), decimal.Zero)

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuote)
	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestCustomizationService_Delete_NotFound(t *testing.T) {
	f := createTestCustomizationService(t)
	ctx := context.Background()
	id := uuid.New()

	f.customizationRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrCustomizationNotFound)

	assert.ErrorIs(t, f.service.Delete(ctx, id), domainerrors.ErrCustomizationNotFound)
}
