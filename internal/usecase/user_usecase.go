package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to open an account.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
	// UserAgent is recorded on the session row.
	UserAgent string
}

// SignInInput defines the data required for a user to sign in.
type SignInInput struct {
	Email     string
	Password  string
	UserAgent string
}

type GoogleSignInInput struct {
	IDToken   string
	UserAgent string
}

type RefreshInput struct {
	RefreshToken string
}

type SignOutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// AuthOutput returns the signed-in user and a fresh token pair.
type AuthOutput struct {
	User   *entity.User
	Role   entity.Role
	Tokens *entity.TokenPair
}

// UserUsecase covers sign-in, sign-up, sign-out and the session view.
type UserUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)
	SignIn(ctx context.Context, input *SignInInput) (*AuthOutput, error)
	SignInWithGoogle(ctx context.Context, input *GoogleSignInInput) (*AuthOutput, error)
	// Refresh rotates the refresh token and issues a new access token.
	Refresh(ctx context.Context, input *RefreshInput) (*AuthOutput, error)
	SignOut(ctx context.Context, input *SignOutInput) error
	SignOutAll(ctx context.Context, userID uuid.UUID) error
}
