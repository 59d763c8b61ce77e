package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a storefront account. Shoppers and staff share the same record;
// back-office permissions live in UserRole rows.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email     string    // Primary contact email, also the sign-in identifier.
	Name      string    // Display name.
	Phone     string    // Optional contact phone, used to prefill checkout.
	CreatedAt time.Time // When the account was created.
	UpdatedAt time.Time // When the account was last modified.
}

// Session describes the caller's authenticated state.
type Session struct {
	User     *User           // The signed-in user.
	Role     Role            // Highest assigned role.
	IsStaff  bool            // Moderator or above.
	Sessions []*RefreshToken // Active refresh sessions for the user.
}
