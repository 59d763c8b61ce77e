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

type roleService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	roleRepo  repository.RoleRepository
	logger    *slog.Logger
}

type RoleServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	RoleRepo  repository.RoleRepository
	Logger    *slog.Logger
}

func NewRoleService(params RoleServiceParams) usecase.RoleUsecase {
	return &roleService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		roleRepo:  params.RoleRepo,
		logger:    params.Logger,
	}
}

func (srv *roleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *roleService) GetRole(ctx context.Context, userID uuid.UUID) (entity.Role, error) {
	roles, err := srv.roleRepo.FindRolesByUserID(ctx, userID)
	if err != nil {
		return "", errors.Wrap(err, "failed to load roles")
	}

	return roles.Highest(), nil
}

func (srv *roleService) CheckRole(ctx context.Context, userID uuid.UUID, required entity.Role) (bool, error) {
	if !required.IsValid() {
		return false, domainerrors.ErrInvalidRole
	}

	role, err := srv.GetRole(ctx, userID)
	if err != nil {
		return false, err
	}

	return role.AtLeast(required), nil
}

func (srv *roleService) ListStaff(ctx context.Context) ([]*entity.StaffMember, error) {
	staff, err := srv.roleRepo.ListStaff(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list staff")
	}

	return staff, nil
}

// authorizeChange applies the rules shared by assign and revoke: admin or
// above, never on yourself, never touching someone who outranks you.
func authorizeChange(actor usecase.Actor, targetID uuid.UUID, targetRole entity.Role) error {
	if !actor.Can(entity.RoleAdmin) {
		return domainerrors.ErrForbidden
	}
	if actor.UserID == targetID {
		return domainerrors.ErrCannotChangeOwnRole
	}
	if targetRole.Rank() > actor.Role.Rank() {
		return domainerrors.ErrRoleEscalation
	}

	return nil
}

func (srv *roleService) AssignRoleByEmail(ctx context.Context, actor usecase.Actor, email string, role entity.Role) (*entity.StaffMember, error) {
	if !role.IsValid() {
		return nil, domainerrors.ErrInvalidRole
	}

	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WithDetails("no account uses this email")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roleRepo := repoFactory.NewRoleRepository()

		current, err := roleRepo.FindRolesByUserID(ctx, user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to load roles")
		}
		if err := authorizeChange(actor, user.ID, current.Highest()); err != nil {
			return err
		}
		if role.Rank() > actor.Role.Rank() {
			return domainerrors.ErrRoleEscalation
		}

		return roleRepo.SetRole(ctx, user.ID, role)
	})
	if err != nil {
		srv.log(ctx).Warn("Role assignment rejected",
			slog.Any("actorID", actor.UserID),
			slog.Any("userID", user.ID),
			slog.String("role", role.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to assign role")
	}

	srv.log(ctx).Info("Role assigned",
		slog.Any("actorID", actor.UserID),
		slog.Any("userID", user.ID),
		slog.String("role", role.String()),
	)

	return &entity.StaffMember{
		UserID:    user.ID,
		Email:     user.Email,
		FullName:  user.Name,
		Role:      role,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (srv *roleService) RevokeRole(ctx context.Context, actor usecase.Actor, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roleRepo := repoFactory.NewRoleRepository()

		current, err := roleRepo.FindRolesByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load roles")
		}
		if err := authorizeChange(actor, userID, current.Highest()); err != nil {
			return err
		}

		return roleRepo.SetRole(ctx, userID, entity.RoleUser)
	})
	if err != nil {
		return errors.Wrap(err, "failed to revoke role")
	}

	srv.log(ctx).Info("Role revoked", slog.Any("actorID", actor.UserID), slog.Any("userID", userID))

	return nil
}
