package impl

import (
	"context"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	txManager   *mockRepo.MockTransactionManager
	userRepo    *mockRepo.MockUserRepository
	addressRepo *mockRepo.MockAddressRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	f := profileServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		addressRepo: mockRepo.NewMockAddressRepository(t),
	}
	f.service = NewProfileService(ProfileServiceParams{
		TxManager:   f.txManager,
		UserRepo:    f.userRepo,
		AddressRepo: f.addressRepo,
		Config:      newTestConfig(),
		Logger:      newTestLogger(),
	})

	return f
}

func validContact() entity.CustomerInfo {
	return entity.CustomerInfo{
		FullName: "Asha Rao",
		Phone:    "9876543210",
		Address:  "12 MG Road",
		City:     "Bengaluru",
		State:    "Karnataka",
		Pincode:  "560001",
	}
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	f := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := f.service.GetProfile(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_UpdateProfile_Success(t *testing.T) {
	f := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	name, phone := "  New Name ", "9876543210"

	f.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Name: "Old"}, nil)
	f.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.Name == "New Name" && u.Phone == phone })).
		Return(nil)

	user, err := f.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Name: &name, Phone: &phone})

	require.NoError(t, err)
	assert.Equal(t, "New Name", user.Name)
}

func TestProfileService_UpdateProfile_Validation(t *testing.T) {
	long := strings.Repeat("a", 101)
	badPhone := "12345"

	tests := []struct {
		name  string
		input *usecase.UpdateProfileInput
	}{
		{name: "name too long", input: &usecase.UpdateProfileInput{Name: &long}},
		{name: "bad phone", input: &usecase.UpdateProfileInput{Phone: &badPhone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestProfileService(t)
			userID := uuid.New()
			f.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID}, nil)

			_, err := f.service.UpdateProfile(context.Background(), userID, tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestProfileService_CreateAddress_FirstBecomesDefault(t *testing.T) {
	f := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.addressRepo.EXPECT().CountByUser(ctx, userID).Return(int64(0), nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txAddressRepo := mockRepo.NewMockAddressRepository(t)
	factory.EXPECT().NewAddressRepository().Return(txAddressRepo)
	expectTx(f.txManager, factory)
	txAddressRepo.EXPECT().ClearDefault(ctx, userID).Return(nil)
	txAddressRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Address")).Return(nil)

	address, err := f.service.CreateAddress(ctx, userID, &usecase.AddressInput{Label: "Home", Contact: validContact()})

	require.NoError(t, err)
	assert.True(t, address.IsDefault)
	assert.Equal(t, "Home", address.Label)
}

func TestProfileService_CreateAddress_LimitReached(t *testing.T) {
	f := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.addressRepo.EXPECT().CountByUser(ctx, userID).Return(int64(10), nil)

	_, err := f.service.CreateAddress(ctx, userID, &usecase.AddressInput{Contact: validContact()})

	assert.ErrorIs(t, err, domainerrors.ErrAddressLimitReached)
}

func TestProfileService_CreateAddress_InvalidContact(t *testing.T) {
	f := createTestProfileService(t)
	contact := validContact()
	contact.Pincode = "12"

	_, err := f.service.CreateAddress(context.Background(), uuid.New(), &usecase.AddressInput{Contact: contact})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCustomerInfo)
	assert.Contains(t, err.Error(), "pincode")
}

func TestProfileService_DeleteAddress_OtherUser(t *testing.T) {
	f := createTestProfileService(t)
	ctx := context.Background()
	addressID := uuid.New()

	f.addressRepo.EXPECT().FindByID(ctx, addressID).Return(&entity.Address{ID: addressID, UserID: uuid.New()}, nil)

	err := f.service.DeleteAddress(ctx, uuid.New(), addressID)

	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestProfileService_SetDefaultAddress(t *testing.T) {
	f := createTestProfileService(t)
	ctx := context.Background()
	userID, addressID := uuid.New(), uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txAddressRepo := mockRepo.NewMockAddressRepository(t)
	factory.EXPECT().NewAddressRepository().Return(txAddressRepo)
	expectTx(f.txManager, factory)
	txAddressRepo.EXPECT().FindByID(ctx, addressID).Return(&entity.Address{ID: addressID, UserID: userID}, nil)
	txAddressRepo.EXPECT().ClearDefault(ctx, userID).Return(nil)
	txAddressRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(a *entity.Address) bool { return a.IsDefault })).
		Return(nil)

	assert.NoError(t, f.service.SetDefaultAddress(ctx, userID, addressID))
}
