package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const maxNameLength = 100

type profileService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	addressRepo  repository.AddressRepository
	maxAddresses int
	logger       *slog.Logger
}

type ProfileServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	AddressRepo repository.AddressRepository
	Config      *config.Config
	Logger      *slog.Logger
}

func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	maxAddresses := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxAddresses = params.Config.Auth.MaxAddresses
	}

	return &profileService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		addressRepo:  params.AddressRepo,
		maxAddresses: maxAddresses,
		logger:       params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" || len([]rune(name)) > maxNameLength {
			return nil, domainerrors.ErrValidationFailed.WithDetails("name must be 1 to 100 characters")
		}
		user.Name = name
	}
	if input.Phone != nil {
		phone := strings.TrimSpace(*input.Phone)
		if phone != "" {
			if msg := phoneProblem(phone); msg != "" {
				return nil, domainerrors.ErrValidationFailed.WithDetails(msg)
			}
		}
		user.Phone = phone
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(domainerrors.ErrUserUpdateFailed, err.Error())
	}

	return user, nil
}

func (srv *profileService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	addresses, err := srv.addressRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

func validateAddress(input *usecase.AddressInput) (entity.CustomerInfo, error) {
	contact := input.Contact.Normalize()
	if problems := contact.Validate(); len(problems) > 0 {
		return contact, domainerrors.ErrInvalidCustomerInfo.WithDetails(describeProblems(problems))
	}

	return contact, nil
}

// CreateAddress makes the first address the default.
func (srv *profileService) CreateAddress(ctx context.Context, userID uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
	contact, err := validateAddress(input)
	if err != nil {
		return nil, err
	}

	count, err := srv.addressRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count addresses")
	}
	if srv.maxAddresses > 0 && count >= int64(srv.maxAddresses) {
		return nil, domainerrors.ErrAddressLimitReached
	}

	address := &entity.Address{
		ID:        uuid.New(),
		UserID:    userID,
		Label:     strings.TrimSpace(input.Label),
		Contact:   contact,
		IsDefault: input.IsDefault || count == 0,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()
		if address.IsDefault {
			if err := addressRepo.ClearDefault(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to clear default address")
			}
		}

		return errors.Wrap(addressRepo.Create(ctx, address), "failed to create address")
	})
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Debug("Address created", slog.Any("userID", userID), slog.Any("addressID", address.ID))

	return address, nil
}

func (srv *profileService) ownedAddress(ctx context.Context, repo repository.AddressRepository, userID, addressID uuid.UUID) (*entity.Address, error) {
	address, err := repo.FindByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address")
	}
	if address.UserID != userID {
		return nil, domainerrors.ErrAddressNotFound
	}

	return address, nil
}

func (srv *profileService) UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
	contact, err := validateAddress(input)
	if err != nil {
		return nil, err
	}

	var updated *entity.Address
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		address, err := srv.ownedAddress(ctx, addressRepo, userID, addressID)
		if err != nil {
			return err
		}

		if input.IsDefault && !address.IsDefault {
			if err := addressRepo.ClearDefault(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to clear default address")
			}
			address.IsDefault = true
		}
		address.Label = strings.TrimSpace(input.Label)
		address.Contact = contact

		if err := addressRepo.Update(ctx, address); err != nil {
			return errors.Wrap(err, "failed to update address")
		}
		updated = address

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (srv *profileService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	if _, err := srv.ownedAddress(ctx, srv.addressRepo, userID, addressID); err != nil {
		return err
	}

	if err := srv.addressRepo.Delete(ctx, addressID); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return domainerrors.ErrAddressNotFound
		}

		return errors.Wrap(err, "failed to delete address")
	}

	return nil
}

func (srv *profileService) SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		address, err := srv.ownedAddress(ctx, addressRepo, userID, addressID)
		if err != nil {
			return err
		}
		if address.IsDefault {
			return nil
		}

		if err := addressRepo.ClearDefault(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to clear default address")
		}
		address.IsDefault = true

		return errors.Wrap(addressRepo.Update(ctx, address), "failed to set default address")
	})
}
