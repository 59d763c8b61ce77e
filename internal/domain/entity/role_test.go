package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_AtLeast(t *testing.T) {
	all := []Role{RoleUser, RoleModerator, RoleAdmin, RoleSuperAdmin}

	for i, have := range all {
		for j, required := range all {
			t.Run(have.String()+">="+required.String(), func(t *testing.T) {
				assert.Equal(t, i >= j, have.AtLeast(required))
			})
		}
	}
}

func TestRole_UnknownRoleRanksBelowUser(t *testing.T) {
	unknown := Role("owner")

	assert.False(t, unknown.IsValid())
	assert.Equal(t, 0, unknown.Rank())
	assert.False(t, unknown.AtLeast(RoleUser))
	assert.True(t, RoleUser.AtLeast(unknown))
}

func TestRole_IsStaff(t *testing.T) {
	assert.False(t, RoleUser.IsStaff())
	assert.True(t, RoleModerator.IsStaff())
	assert.True(t, RoleAdmin.IsStaff())
	assert.True(t, RoleSuperAdmin.IsStaff())
}

func TestRoles_Highest(t *testing.T) {
	tests := []struct {
		name  string
		roles Roles
		want  Role
	}{
		{name: "no rows defaults to user", roles: nil, want: RoleUser},
		{name: "single row", roles: Roles{RoleModerator}, want: RoleModerator},
		{name: "highest of several", roles: Roles{RoleModerator, RoleSuperAdmin, RoleAdmin}, want: RoleSuperAdmin},
		{name: "unknown values ignored", roles: Roles{Role("root"), RoleAdmin}, want: RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.roles.Highest())
		})
	}
}

func TestRolesFromStrings_FiltersInvalid(t *testing.T) {
	roles := RolesFromStrings([]string{"admin", "merchant", "user", ""})

	assert.Equal(t, Roles{RoleAdmin, RoleUser}, roles)
	assert.Equal(t, []string{"admin", "user"}, roles.ToStrings())
}
