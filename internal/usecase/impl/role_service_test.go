package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roleServiceFixtures struct {
	service   usecase.RoleUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	roleRepo  *mockRepo.MockRoleRepository
}

func createTestRoleService(t *testing.T) roleServiceFixtures {
	f := roleServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		roleRepo:  mockRepo.NewMockRoleRepository(t),
	}
	f.service = NewRoleService(RoleServiceParams{
		TxManager: f.txManager,
		UserRepo:  f.userRepo,
		RoleRepo:  f.roleRepo,
		Logger:    newTestLogger(),
	})

	return f
}

func TestRoleService_CheckRole(t *testing.T) {
	f := createTestRoleService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.roleRepo.EXPECT().FindRolesByUserID(ctx, userID).Return(entity.Roles{entity.RoleModerator}, nil)

	ok, err := f.service.CheckRole(ctx, userID, entity.RoleAdmin)

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRoleService_GetRole_DefaultsToUser(t *testing.T) {
	f := createTestRoleService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.roleRepo.EXPECT().FindRolesByUserID(ctx, userID).Return(entity.Roles(nil), nil)

	role, err := f.service.GetRole(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, role)
}

func TestAuthorizeChange(t *testing.T) {
	admin := usecase.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}

	tests := []struct {
		name       string
		actor      usecase.Actor
		targetID   uuid.UUID
		targetRole entity.Role
		wantErr    error
	}{
		{name: "admin on user", actor: admin, targetID: uuid.New(), targetRole: entity.RoleUser},
		{name: "moderator forbidden", actor: usecase.Actor{UserID: uuid.New(), Role: entity.RoleModerator}, targetID: uuid.New(), targetRole: entity.RoleUser, wantErr: domainerrors.ErrForbidden},
		{name: "self", actor: admin, targetID: admin.UserID, targetRole: entity.RoleAdmin, wantErr: domainerrors.ErrCannotChangeOwnRole},
		{name: "outranked", actor: admin, targetID: uuid.New(), targetRole: entity.RoleSuperAdmin, wantErr: domainerrors.ErrRoleEscalation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authorizeChange(tt.actor, tt.targetID, tt.targetRole)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRoleService_AssignRoleByEmail_Success(t *testing.T) {
	f := createTestRoleService(t)
	ctx := context.Background()
	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}
	target := &entity.User{ID: uuid.New(), Email: "mod@example.com", Name: "Mod"}

	f.userRepo.EXPECT().FindByEmail(ctx, "mod@example.com").Return(target, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRoleRepo := mockRepo.NewMockRoleRepository(t)
	factory.EXPECT().NewRoleRepository().Return(txRoleRepo)
	expectTx(f.txManager, factory)
	txRoleRepo.EXPECT().FindRolesByUserID(ctx, target.ID).Return(entity.Roles{entity.RoleUser}, nil)
	txRoleRepo.EXPECT().SetRole(ctx, target.ID, entity.RoleModerator).Return(nil)

	member, err := f.service.AssignRoleByEmail(ctx, actor, " MOD@example.com", entity.RoleModerator)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleModerator, member.Role)
	assert.Equal(t, target.ID, member.UserID)
}

func TestRoleService_AssignRoleByEmail_AboveOwnRole(t *testing.T) {
	f := createTestRoleService(t)
	ctx := context.Background()
	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}
	target := &entity.User{ID: uuid.New(), Email: "u@example.com"}

	f.userRepo.EXPECT().FindByEmail(ctx, "u@example.com").Return(target, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRoleRepo := mockRepo.NewMockRoleRepository(t)
	factory.EXPECT().NewRoleRepository().Return(txRoleRepo)
	expectTx(f.txManager, factory)
	txRoleRepo.EXPECT().FindRolesByUserID(ctx, target.ID).Return(entity.Roles{entity.RoleUser}, nil)

	_, err := f.service.AssignRoleByEmail(ctx, actor, "u@example.com", entity.RoleSuperAdmin)

	assert.ErrorIs(t, err, domainerrors.ErrRoleEscalation)
}

func TestRoleService_AssignRoleByEmail_UnknownEmail(t *testing.T) {
	f := createTestRoleService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := f.service.AssignRoleByEmail(ctx, usecase.Actor{Role: entity.RoleAdmin}, "ghost@example.com", entity.RoleModerator)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestRoleService_RevokeRole(t *testing.T) {
	f := createTestRoleService(t)
	ctx := context.Background()
	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleSuperAdmin}
	targetID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRoleRepo := mockRepo.NewMockRoleRepository(t)
	factory.EXPECT().NewRoleRepository().Return(txRoleRepo)
	expectTx(f.txManager, factory)
	txRoleRepo.EXPECT().FindRolesByUserID(ctx, targetID).Return(entity.Roles{entity.RoleAdmin}, nil)
	txRoleRepo.EXPECT().SetRole(ctx, targetID, entity.RoleUser).Return(nil)

	assert.NoError(t, f.service.RevokeRole(ctx, actor, targetID))
}
