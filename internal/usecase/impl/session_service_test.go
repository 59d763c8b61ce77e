package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionServiceFixtures struct {
	service          usecase.SessionUsecase
	userRepo         *mockRepo.MockUserRepository
	roleRepo         *mockRepo.MockRoleRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	f := sessionServiceFixtures{
		userRepo:         mockRepo.NewMockUserRepository(t),
		roleRepo:         mockRepo.NewMockRoleRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
	}
	f.service = NewSessionService(SessionServiceParams{
		UserRepo:         f.userRepo,
		RoleRepo:         f.roleRepo,
		RefreshTokenRepo: f.refreshTokenRepo,
		Logger:           newTestLogger(),
	})

	return f
}

func TestSessionService_GetSession_Success(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()
	userID := uuid.New()
	tokens := []*entity.RefreshToken{
		{ID: uuid.New(), UserID: userID, CreatedAt: time.Now(), ExpiresAt: time.Now().Add(time.Hour)},
	}

	f.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	f.roleRepo.EXPECT().FindRolesByUserID(ctx, userID).Return(entity.Roles{entity.RoleModerator}, nil)
	f.refreshTokenRepo.EXPECT().FindRefreshTokensByUserID(ctx, userID).Return(tokens, nil)

	session, err := f.service.GetSession(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleModerator, session.Role)
	assert.True(t, session.IsStaff)
	assert.Len(t, session.Sessions, 1)
}

func TestSessionService_GetSession_DeletedUser(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := f.service.GetSession(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestSessionService_RevokeSession_Success(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()
	userID, sessionID := uuid.New(), uuid.New()

	f.refreshTokenRepo.EXPECT().FindRefreshTokenByID(ctx, sessionID).Return(&entity.RefreshToken{ID: sessionID, UserID: userID}, nil)
	f.refreshTokenRepo.EXPECT().DeleteRefreshToken(ctx, sessionID).Return(nil)

	assert.NoError(t, f.service.RevokeSession(ctx, userID, sessionID))
}

func TestSessionService_RevokeSession_OtherUsersSession(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()
	sessionID := uuid.New()

	f.refreshTokenRepo.EXPECT().FindRefreshTokenByID(ctx, sessionID).Return(&entity.RefreshToken{ID: sessionID, UserID: uuid.New()}, nil)

	err := f.service.RevokeSession(ctx, uuid.New(), sessionID)

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenNotFound)
}

func TestSessionService_PurgeExpired(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()

	f.refreshTokenRepo.EXPECT().DeleteExpiredRefreshTokens(ctx).Return(int64(3), nil)

	removed, err := f.service.PurgeExpired(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}
