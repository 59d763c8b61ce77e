// Package entity contains the core business objects of the storefront.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role is a back-office permission level. Roles form a total order.
type Role string

const (
	// RoleUser is a regular shopper.
	RoleUser Role = "user"
	// RoleModerator can work the order and customization queues.
	RoleModerator Role = "moderator"
	// RoleAdmin can manage the catalog, notifications and staff below admin.
	RoleAdmin Role = "admin"
	// RoleSuperAdmin can do everything, including appointing admins.
	RoleSuperAdmin Role = "super_admin"
)

// AllRoles lists every role from lowest to highest.
var AllRoles = []Role{RoleUser, RoleModerator, RoleAdmin, RoleSuperAdmin}

var roleRanks = map[Role]int{
	RoleUser:       1,
	RoleModerator:  2,
	RoleAdmin:      3,
	RoleSuperAdmin: 4,
}

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is one of the four known roles.
func (r Role) IsValid() bool {
	_, ok := roleRanks[r]

	return ok
}

// Rank maps the role to 1..4; unknown roles rank 0.
func (r Role) Rank() int {
	return roleRanks[r]
}

// AtLeast reports whether r ranks at or above required.
func (r Role) AtLeast(required Role) bool {
	return r.Rank() >= required.Rank()
}

// IsStaff reports whether r grants access to the admin console.
func (r Role) IsStaff() bool {
	return r.AtLeast(RoleModerator)
}

// ParseRole returns the role named s, or false if s is not a known role.
func ParseRole(s string) (Role, bool) {
	r := Role(s)

	return r, r.IsValid()
}

// Roles is a user's set of role rows.
type Roles []Role

// Highest returns the top-ranked valid role, or RoleUser for an empty set.
func (rs Roles) Highest() Role {
	highest := RoleUser
	for _, r := range rs {
		if r.Rank() > highest.Rank() {
			highest = r
		}
	}

	return highest
}

// ToStrings converts Roles to []string for token claims.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings keeps only the valid role names in ss.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		if role, ok := ParseRole(s); ok {
			result = append(result, role)
		}
	}

	return result
}

// UserRole is one role assignment row.
type UserRole struct {
	UserID    uuid.UUID // The user holding the role.
	Role      Role      // The assigned role.
	CreatedAt time.Time // When the role was first assigned.
	UpdatedAt time.Time // When the role last changed.
}

// StaffMember is a user holding moderator or above, joined with profile data.
type StaffMember struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
