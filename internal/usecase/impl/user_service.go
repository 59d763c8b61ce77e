// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	authRepo          repository.AuthRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	roleRepo          repository.RoleRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	maxActiveSessions int
	logger            *slog.Logger
	now               func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	UserRepo          repository.UserRepository
	AuthRepo          repository.AuthRepository
	RefreshTokenRepo  repository.RefreshTokenRepository
	RoleRepo          repository.RoleRepository
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService `optional:"true"`
	Config            *config.Config
	Logger            *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		authRepo:          params.AuthRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		roleRepo:          params.RoleRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
		now:               time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp creates the user, the email credential and the default role in one transaction.
func (srv *userService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	if !isValidEmail(email) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("a valid email is required")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during sign-up", slog.String("email", email), slog.Any("error", err))

		return nil, domainerrors.ErrPasswordStrength.WithDetails(err.Error())
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}

	newUser := &entity.User{Name: name, Email: email}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.NewAuthRepository()

		_, findErr := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if findErr == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(findErr, repository.ErrAuthNotFound) {
			return errors.Wrap(findErr, "failed to find authentication")
		}

		if err := repoFactory.NewUserRepository().Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrUserEmailTaken) {
				return domainerrors.ErrUserAlreadyExists
			}

			return errors.Wrap(err, "failed to create user during sign-up")
		}

		if err := authRepo.CreateAuthentication(ctx, &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: email,
			PasswordHash:   hashedPassword,
		}); err != nil {
			return errors.Wrap(err, "failed to create authentication during sign-up")
		}

		return errors.Wrap(repoFactory.NewRoleRepository().SetRole(ctx, newUser.ID, entity.RoleUser), "failed to assign default role")
	})
	if err != nil {
		srv.log(ctx).Warn("Sign-up failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute sign-up transaction")
	}

	tokens, err := srv.issueSession(ctx, newUser.ID, entity.RoleUser, input.UserAgent)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("User signed up", slog.Any("userID", newUser.ID))

	return &usecase.AuthOutput{User: newUser, Role: entity.RoleUser, Tokens: tokens}, nil
}

// SignIn verifies the password outside any transaction; bcrypt is CPU-bound.
func (srv *userService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	authRecord, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			srv.log(ctx).Warn("Sign-in failed: unknown email", slog.String("email", email))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Sign-in failed: password mismatch", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.completeSignIn(ctx, authRecord.UserID, input.UserAgent)
}

func (srv *userService) SignInWithGoogle(ctx context.Context, input *usecase.GoogleSignInInput) (*usecase.AuthOutput, error) {
	if srv.googleAuthService == nil {
		return nil, domainerrors.ErrOAuthFailed.WithDetails("google sign-in is not configured")
	}

	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, err.Error())
	}
	if !oauthUser.EmailVerified {
		return nil, domainerrors.ErrOAuthFailed.WithDetails("google account email is not verified")
	}

	var userID uuid.UUID
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := srv.findOrCreateGoogleUser(ctx, repoFactory, oauthUser)
		if err != nil {
			return err
		}
		userID = user.ID

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute Google sign-in transaction")
	}

	return srv.completeSignIn(ctx, userID, input.UserAgent)
}

// findOrCreateGoogleUser links the Google subject to an existing account with
// the same email, or opens a new one.
func (srv *userService) findOrCreateGoogleUser(ctx context.Context, repoFactory repository.RepositoryFactory, oauthUser *service.OAuthUser) (*entity.User, error) {
	authRepo := repoFactory.NewAuthRepository()
	userRepo := repoFactory.NewUserRepository()

	authRecord, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeGoogle, oauthUser.ID)
	if err == nil {
		user, findErr := userRepo.FindByID(ctx, authRecord.UserID)

		return user, errors.Wrap(findErr, "failed to find user by id for google auth")
	}
	if !errors.Is(err, repository.ErrAuthNotFound) {
		return nil, errors.Wrap(err, "failed to find authentication")
	}

	user, err := userRepo.FindByEmail(ctx, oauthUser.Email)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		srv.log(ctx).Info("Google user not found, creating new user", slog.String("email", oauthUser.Email))

		user = &entity.User{Name: oauthUser.Name, Email: normalizeEmail(oauthUser.Email)}
		if err := userRepo.Create(ctx, user); err != nil {
			return nil, errors.Wrap(err, "failed to create user for Google authentication")
		}
		if err := repoFactory.NewRoleRepository().SetRole(ctx, user.ID, entity.RoleUser); err != nil {
			return nil, errors.Wrap(err, "failed to assign default role")
		}
	case err != nil:
		return nil, errors.Wrap(err, "failed to find user by email")
	default:
		srv.log(ctx).Info("Linking Google account to existing user", slog.Any("userID", user.ID))
	}

	if err := authRepo.CreateAuthentication(ctx, &entity.Authentication{
		UserID:         user.ID,
		Provider:       entity.ProviderTypeGoogle,
		ProviderUserID: oauthUser.ID,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to create Google authentication")
	}

	return user, nil
}

func (srv *userService) completeSignIn(ctx context.Context, userID uuid.UUID, userAgent string) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	roles, err := srv.roleRepo.FindRolesByUserID(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load roles")
	}
	role := roles.Highest()

	tokens, err := srv.issueSession(ctx, user.ID, role, userAgent)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Debug("User signed in", slog.Any("userID", user.ID), slog.String("role", role.String()))

	return &usecase.AuthOutput{User: user, Role: role, Tokens: tokens}, nil
}

// issueSession signs a token pair and stores the refresh token hash. With a
// session limit the oldest sessions are evicted to make room.
func (srv *userService) issueSession(ctx context.Context, userID uuid.UUID, role entity.Role, userAgent string) (*entity.TokenPair, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(userID, []string{role.String()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if srv.maxActiveSessions > 0 {
		if err := srv.evictOldestSessions(ctx, userID); err != nil {
			return nil, err
		}
	}

	now := srv.now()
	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, &entity.RefreshToken{
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		UserAgent: userAgent,
		ExpiresAt: now.Add(srv.tokenService.RefreshTokenDuration()),
	}); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &entity.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    now.Add(srv.tokenService.AccessTokenDuration()),
	}, nil
}

func (srv *userService) evictOldestSessions(ctx context.Context, userID uuid.UUID) error {
	sessions, err := srv.refreshTokenRepo.FindRefreshTokensByUserID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to list active sessions")
	}

	for i := 0; len(sessions)-i >= srv.maxActiveSessions; i++ {
		if err := srv.refreshTokenRepo.DeleteRefreshToken(ctx, sessions[i].ID); err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return errors.Wrap(err, "failed to evict session")
		}
		srv.log(ctx).Info("Evicted oldest session", slog.Any("userID", userID), slog.Any("sessionID", sessions[i].ID))
	}

	return nil
}

// Refresh rotates the session: the presented refresh token is deleted and a new pair issued.
func (srv *userService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.AuthOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	stored, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}
	if stored.UserID != claims.UserID {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	if err := srv.refreshTokenRepo.DeleteRefreshToken(ctx, stored.ID); err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return nil, errors.Wrap(err, "failed to rotate refresh token")
	}

	return srv.completeSignIn(ctx, stored.UserID, stored.UserAgent)
}

// SignOut is idempotent: an unknown token is not an error.
func (srv *userService) SignOut(ctx context.Context, input *usecase.SignOutInput) error {
	if _, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken); err != nil {
		srv.log(ctx).Warn("Sign-out with invalid token", slog.Any("error", err))
	}

	err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}

	return nil
}

func (srv *userService) SignOutAll(ctx context.Context, userID uuid.UUID) error {
	if err := srv.refreshTokenRepo.DeleteRefreshTokensByUserID(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to delete all refresh tokens", slog.Any("error", err), slog.Any("userID", userID))

		return errors.Wrap(err, "failed to delete all refresh tokens")
	}
	srv.log(ctx).Info("Signed out from all devices", slog.Any("userID", userID))

	return nil
}
