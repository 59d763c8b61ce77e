package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRoleHandler_CheckRole(t *testing.T) {
	roleUC := mockUC.NewMockRoleUsecase(t)
	h := NewRoleHandler(RoleHandlerParams{RoleUC: roleUC})

	roleUC.EXPECT().GetRole(mock.Anything, testUserID).Return(entity.RoleModerator, nil)
	roleUC.EXPECT().CheckRole(mock.Anything, testUserID, entity.RoleAdmin).Return(false, nil)

	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/roles/check?role=admin", principal: shopper()})
	require.NoError(t, h.CheckRole(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Role    entity.Role `json:"role"`
		IsStaff bool        `json:"is_staff"`
		Allowed *bool       `json:"allowed"`
	}
	decodeData(t, rec, &got)
	assert.Equal(t, entity.RoleModerator, got.Role)
	assert.True(t, got.IsStaff)
	require.NotNil(t, got.Allowed)
	assert.False(t, *got.Allowed)
}

func TestRoleHandler_CheckRole_UnknownRole(t *testing.T) {
	roleUC := mockUC.NewMockRoleUsecase(t)
	h := NewRoleHandler(RoleHandlerParams{RoleUC: roleUC})

	roleUC.EXPECT().GetRole(mock.Anything, testUserID).Return(entity.RoleUser, nil)

	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/?role=overlord", principal: shopper()})
	require.NoError(t, h.CheckRole(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ROLE", decodeError(t, rec).Code)
}

func TestRoleHandler_AssignRole(t *testing.T) {
	roleUC := mockUC.NewMockRoleUsecase(t)
	h := NewRoleHandler(RoleHandlerParams{RoleUC: roleUC})
	actor := usecase.Actor{UserID: testUserID, Role: entity.RoleAdmin}

	roleUC.EXPECT().
		AssignRoleByEmail(mock.Anything, actor, "mod@example.com", entity.RoleSuperAdmin).
		Return(nil, domainerrors.ErrRoleEscalation)

	c, rec := newTestContext(testRequest{
		method:    http.MethodPost,
		target:    "/",
		body:      `{"email":"mod@example.com","role":"super_admin"}`,
		principal: staff(entity.RoleAdmin),
	})
	require.NoError(t, h.AssignRole(c))
	assert.Equal(t, domainerrors.ErrRoleEscalation.HTTPCode(), rec.Code)

	c, rec = newTestContext(testRequest{method: http.MethodPost, target: "/", body: `{"email":"nope","role":"admin"}`, principal: staff(entity.RoleAdmin)})
	require.NoError(t, h.AssignRole(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
