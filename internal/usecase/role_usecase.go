package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// RoleUsecase manages back-office permissions.
type RoleUsecase interface {
	// GetRole returns the user's highest role; users without rows are RoleUser.
	GetRole(ctx context.Context, userID uuid.UUID) (entity.Role, error)
	CheckRole(ctx context.Context, userID uuid.UUID, required entity.Role) (bool, error)
	ListStaff(ctx context.Context) ([]*entity.StaffMember, error)
	// AssignRoleByEmail requires admin and never grants above the actor's own role.
	AssignRoleByEmail(ctx context.Context, actor Actor, email string, role entity.Role) (*entity.StaffMember, error)
	// RevokeRole drops the user back to RoleUser.
	RevokeRole(ctx context.Context, actor Actor, userID uuid.UUID) error
}
