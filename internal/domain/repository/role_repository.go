package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// RoleRepository stores role assignments. A user may have several rows; the
// highest one applies.
type RoleRepository interface {
	FindRolesByUserID(ctx context.Context, userID uuid.UUID) (entity.Roles, error)
	// SetRole replaces every row of the user with a single row for role.
	SetRole(ctx context.Context, userID uuid.UUID, role entity.Role) error
	// ListStaff returns users holding moderator or above, highest role first.
	ListStaff(ctx context.Context) ([]*entity.StaffMember, error)
	// ListUserIDsWithRoleAtLeast is used to fan staff alerts out to devices.
	ListUserIDsWithRoleAtLeast(ctx context.Context, role entity.Role) ([]uuid.UUID, error)
}
