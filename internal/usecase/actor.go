// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a usecase.
type Actor struct {
	UserID uuid.UUID
	Role   entity.Role
}

// IsStaff reports whether the actor may use the back office.
func (a Actor) IsStaff() bool {
	return a.Role.IsStaff()
}

// Can reports whether the actor ranks at or above required.
func (a Actor) Can(required entity.Role) bool {
	return a.Role.AtLeast(required)
}
