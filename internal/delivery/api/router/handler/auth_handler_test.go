package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authHandlerFixtures struct {
	handler   *AuthHandler
	userUC    *mockUC.MockUserUsecase
	sessionUC *mockUC.MockSessionUsecase
	cartUC    *mockUC.MockCartUsecase
}

func createTestAuthHandler(t *testing.T) *authHandlerFixtures {
	f := &authHandlerFixtures{
		userUC:    mockUC.NewMockUserUsecase(t),
		sessionUC: mockUC.NewMockSessionUsecase(t),
		cartUC:    mockUC.NewMockCartUsecase(t),
	}
	f.handler = NewAuthHandler(AuthHandlerParams{
		UserUC:    f.userUC,
		SessionUC: f.sessionUC,
		CartUC:    f.cartUC,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return f
}

func authOutput(role entity.Role) *usecase.AuthOutput {
	return &usecase.AuthOutput{
		User: &entity.User{ID: testUserID, Email: "shopper@example.com", Name: "Asha"},
		Role: role,
		Tokens: &entity.TokenPair{
			AccessToken:  "access",
			RefreshToken: "refresh",
			ExpiresAt:    time.Date(2024, 6, 10, 6, 28, 20, 0, time.UTC),
		},
	}
}

func TestAuthHandler_SignUp_MergesGuestCart(t *testing.T) {
	f := createTestAuthHandler(t)
	c, rec := newTestContext(testRequest{
		method:  http.MethodPost,
		target:  "/api/v1/auth/signup",
		body:    `{"name":"Asha","email":"shopper@example.com","password":"Secret#123"}`,
		headers: map[string]string{deliverycontext.HeaderGuestCartID: "guest-42", "User-Agent": "test-agent"},
	})

	f.userUC.EXPECT().
		SignUp(mock.Anything, &usecase.SignUpInput{
			Name:      "Asha",
			Email:     "shopper@example.com",
			Password:  "Secret#123",
			UserAgent: "test-agent",
		}).
		Return(authOutput(entity.RoleUser), nil)
	f.cartUC.EXPECT().MergeGuestCart(mock.Anything, testUserID, "guest-42").Return(&usecase.CartOutput{}, nil)

	require.NoError(t, f.handler.SignUp(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var got AuthResponse
	decodeData(t, rec, &got)
	assert.Equal(t, "shopper@example.com", got.User.Email)
	assert.Equal(t, "access", got.Tokens.AccessToken)
	assert.False(t, got.IsStaff)
}

func TestAuthHandler_SignIn_MergeFailureStillSignsIn(t *testing.T) {
	f := createTestAuthHandler(t)
	c, rec := newTestContext(testRequest{
		method:  http.MethodPost,
		target:  "/api/v1/auth/signin",
		body:    `{"email":"admin@example.com","password":"Secret#123"}`,
		headers: map[string]string{deliverycontext.HeaderGuestCartID: "guest-42"},
	})

	f.userUC.EXPECT().SignIn(mock.Anything, mock.Anything).Return(authOutput(entity.RoleAdmin), nil)
	f.cartUC.EXPECT().MergeGuestCart(mock.Anything, testUserID, "guest-42").Return(nil, assert.AnError)

	require.NoError(t, f.handler.SignIn(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got AuthResponse
	decodeData(t, rec, &got)
	assert.Equal(t, entity.RoleAdmin, got.Role)
	assert.True(t, got.IsStaff)
}

func TestAuthHandler_SignIn_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(f *authHandlerFixtures)
		wantCode int
		wantErr  string
	}{
		{
			name:     "malformed email",
			body:     `{"email":"nope","password":"x"}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_ERROR",
		},
		{
			name:     "malformed json",
			body:     `{"email":`,
			wantCode: http.StatusBadRequest,
			wantErr:  "INVALID_INPUT",
		},
		{
			name: "bad credentials",
			body: `{"email":"shopper@example.com","password":"wrong"}`,
			setup: func(f *authHandlerFixtures) {
				f.userUC.EXPECT().SignIn(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)
			},
			wantCode: http.StatusUnauthorized,
			wantErr:  "INVALID_CREDENTIALS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAuthHandler(t)
			if tt.setup != nil {
				tt.setup(f)
			}
			c, rec := newTestContext(testRequest{method: http.MethodPost, target: "/api/v1/auth/signin", body: tt.body})

			require.NoError(t, f.handler.SignIn(c))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantErr, decodeError(t, rec).Code)
		})
	}
}

func TestAuthHandler_ValidationDetailsUseJSONNames(t *testing.T) {
	f := createTestAuthHandler(t)
	c, rec := newTestContext(testRequest{method: http.MethodPost, target: "/api/v1/auth/google", body: `{}`})

	require.NoError(t, f.handler.SignInWithGoogle(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"id_token": "required"}, decodeError(t, rec).Details)
}

func TestAuthHandler_GetSession(t *testing.T) {
	f := createTestAuthHandler(t)
	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/auth/session", principal: staff(entity.RoleModerator)})

	f.sessionUC.EXPECT().GetSession(mock.Anything, testUserID).Return(&entity.Session{
		User:     &entity.User{ID: testUserID, Email: "mod@example.com"},
		Role:     entity.RoleModerator,
		IsStaff:  true,
		Sessions: []*entity.RefreshToken{{UserAgent: "firefox"}},
	}, nil)

	require.NoError(t, f.handler.GetSession(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got SessionResponse
	decodeData(t, rec, &got)
	assert.True(t, got.IsStaff)
	require.Len(t, got.Sessions, 1)
	assert.Equal(t, "firefox", got.Sessions[0].UserAgent)
}

func TestAuthHandler_RevokeSession(t *testing.T) {
	f := createTestAuthHandler(t)

	c, rec := newTestContext(testRequest{method: http.MethodDelete, target: "/", principal: shopper(), params: map[string]string{"id": "bogus"}})
	require.NoError(t, f.handler.RevokeSession(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newTestContext(testRequest{method: http.MethodDelete, target: "/", params: map[string]string{"id": testUserID.String()}})
	require.NoError(t, f.handler.RevokeSession(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	sessionID := "0b9d7a9e-63a4-4f5f-9e43-5f3c3d2f6a10"
	f.sessionUC.EXPECT().RevokeSession(mock.Anything, testUserID, mock.Anything).Return(domainerrors.ErrRefreshTokenNotFound)
	c, rec = newTestContext(testRequest{method: http.MethodDelete, target: "/", principal: shopper(), params: map[string]string{"id": sessionID}})
	require.NoError(t, f.handler.RevokeSession(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
