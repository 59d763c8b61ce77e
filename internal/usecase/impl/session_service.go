package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type sessionService struct {
	userRepo         repository.UserRepository
	roleRepo         repository.RoleRepository
	refreshTokenRepo repository.RefreshTokenRepository
	logger           *slog.Logger
}

type SessionServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	RoleRepo         repository.RoleRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Logger           *slog.Logger
}

func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		userRepo:         params.UserRepo,
		roleRepo:         params.RoleRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		logger:           params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) GetSession(ctx context.Context, userID uuid.UUID) (*entity.Session, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthorized.WithDetails("account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	roles, err := srv.roleRepo.FindRolesByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load roles")
	}

	sessions, err := srv.refreshTokenRepo.FindRefreshTokensByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get active sessions")
	}

	role := roles.Highest()

	return &entity.Session{
		User:     user,
		Role:     role,
		IsStaff:  role.IsStaff(),
		Sessions: sessions,
	}, nil
}

// RevokeSession refuses to reveal sessions that belong to someone else.
func (srv *sessionService) RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	session, err := srv.refreshTokenRepo.FindRefreshTokenByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return domainerrors.ErrRefreshTokenNotFound
		}

		return errors.Wrap(err, "failed to find session")
	}
	if session.UserID != userID {
		srv.log(ctx).Warn("Attempt to revoke another user's session", slog.Any("userID", userID), slog.Any("sessionID", sessionID))

		return domainerrors.ErrRefreshTokenNotFound
	}

	if err := srv.refreshTokenRepo.DeleteRefreshToken(ctx, sessionID); err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return errors.Wrap(err, "failed to revoke session")
	}

	return nil
}

func (srv *sessionService) PurgeExpired(ctx context.Context) (int64, error) {
	removed, err := srv.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge expired sessions")
	}
	if removed > 0 {
		srv.log(ctx).Info("Purged expired sessions", slog.Int64("count", removed))
	}

	return removed, nil
}
