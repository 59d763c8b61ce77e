package postgres

import (
	"context"
	"sort"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

func (repo *roleRepository) FindRolesByUserID(ctx context.Context, userID uuid.UUID) (entity.Roles, error) {
	var names []string
	err := repo.db.WithContext(ctx).
		Model(&model.UserRoleModel{}).
		Where("user_id = ?", userID).
		Pluck("role", &names).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user roles")
	}

	return entity.RolesFromStrings(names), nil
}

// SetRole runs delete-then-insert; callers wanting atomicity pass a transaction-bound repository.
func (repo *roleRepository) SetRole(ctx context.Context, userID uuid.UUID, role entity.Role) error {
	if !role.IsValid() {
		return domainerrors.ErrInvalidRole
	}

	db := repo.db.WithContext(ctx)
	if err := db.Where("user_id = ?", userID).Delete(&model.UserRoleModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear user roles")
	}

	now := time.Now()
	row := &model.UserRoleModel{UserID: userID, Role: role.String(), CreatedAt: now, UpdatedAt: now}
	if err := db.Create(row).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to assign role")
	}

	return nil
}

type staffRow struct {
	UserID    uuid.UUID
	Email     string
	Name      string
	Role      string
	CreatedAt time.Time
}

func (repo *roleRepository) ListStaff(ctx context.Context) ([]*entity.StaffMember, error) {
	var rows []staffRow
	err := repo.db.WithContext(ctx).
		Table("user_roles AS r").
		Select("r.user_id, u.email, u.name, r.role, r.created_at").
		Joins("JOIN users AS u ON u.id = r.user_id").
		Where("r.role IN ?", rolesAtLeast(entity.RoleModerator)).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list staff")
	}

	byUser := make(map[uuid.UUID]*entity.StaffMember, len(rows))
	for _, row := range rows {
		role := entity.Role(row.Role)
		existing, ok := byUser[row.UserID]
		if ok && existing.Role.Rank() >= role.Rank() {
			continue
		}
		byUser[row.UserID] = &entity.StaffMember{
			UserID:    row.UserID,
			Email:     row.Email,
			FullName:  row.Name,
			Role:      role,
			CreatedAt: row.CreatedAt,
		}
	}

	staff := make([]*entity.StaffMember, 0, len(byUser))
	for _, member := range byUser {
		staff = append(staff, member)
	}
	sort.Slice(staff, func(i, j int) bool {
		if staff[i].Role.Rank() != staff[j].Role.Rank() {
			return staff[i].Role.Rank() > staff[j].Role.Rank()
		}

		return staff[i].Email < staff[j].Email
	})

	return staff, nil
}

func (repo *roleRepository) ListUserIDsWithRoleAtLeast(ctx context.Context, role entity.Role) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := repo.db.WithContext(ctx).
		Model(&model.UserRoleModel{}).
		Distinct("user_id").
		Where("role IN ?", rolesAtLeast(role)).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users by role")
	}

	return ids, nil
}

func rolesAtLeast(min entity.Role) []string {
	var names []string
	for _, r := range entity.AllRoles {
		if r.AtLeast(min) {
			names = append(names, r.String())
		}
	}

	return names
}
