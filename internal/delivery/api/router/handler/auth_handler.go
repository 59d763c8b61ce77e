package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type AuthHandlerParams struct {
	fx.In

	UserUC    usecase.UserUsecase
	SessionUC usecase.SessionUsecase
	CartUC    usecase.CartUsecase
	Logger    *slog.Logger
}

// AuthHandler serves sign-up, sign-in and session management.
type AuthHandler struct {
	userUC    usecase.UserUsecase
	sessionUC usecase.SessionUsecase
	cartUC    usecase.CartUsecase
	logger    *slog.Logger
}

func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		userUC:    params.UserUC,
		sessionUC: params.SessionUC,
		cartUC:    params.CartUC,
		logger:    params.Logger,
	}
}

type SignUpRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleSignInRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UserView is the public shape of an account.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserView(u *entity.User) *UserView {
	if u == nil {
		return nil
	}

	return &UserView{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}

type AuthResponse struct {
	User    *UserView         `json:"user"`
	Role    entity.Role       `json:"role"`
	IsStaff bool              `json:"is_staff"`
	Tokens  *entity.TokenPair `json:"tokens"`
}

func newAuthResponse(out *usecase.AuthOutput) *AuthResponse {
	return &AuthResponse{
		User:    newUserView(out.User),
		Role:    out.Role,
		IsStaff: out.Role.IsStaff(),
		Tokens:  out.Tokens,
	}
}

func (h *AuthHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid sign-up input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	out, err := h.userUC.SignUp(c.Request().Context(), &usecase.SignUpInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}
	h.adoptGuestCart(c, out)

	return response.Success(c, http.StatusCreated, newAuthResponse(out))
}

func (h *AuthHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid sign-in input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	out, err := h.userUC.SignIn(c.Request().Context(), &usecase.SignInInput{
		Email:     req.Email,
		Password:  req.Password,
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}
	h.adoptGuestCart(c, out)

	return response.Success(c, http.StatusOK, newAuthResponse(out))
}

func (h *AuthHandler) SignInWithGoogle(c echo.Context) error {
	var req GoogleSignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid Google sign-in input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	out, err := h.userUC.SignInWithGoogle(c.Request().Context(), &usecase.GoogleSignInInput{
		IDToken:   req.IDToken,
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}
	h.adoptGuestCart(c, out)

	return response.Success(c, http.StatusOK, newAuthResponse(out))
}

// adoptGuestCart folds the X-Cart-Id cart into the account. Failures only cost
// the guest lines, so they are logged and the sign-in still succeeds.
func (h *AuthHandler) adoptGuestCart(c echo.Context, out *usecase.AuthOutput) {
	token := guestToken(c)
	if token == "" || out.User == nil {
		return
	}

	if _, err := h.cartUC.MergeGuestCart(c.Request().Context(), out.User.ID, token); err != nil {
		h.logger.Warn("Failed to merge guest cart",
			slog.String("user_id", out.User.ID.String()),
			slog.Any("error", err),
		)
	}
}

func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid refresh token input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	out, err := h.userUC.Refresh(c.Request().Context(), &usecase.RefreshInput{RefreshToken: req.RefreshToken})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAuthResponse(out))
}

func (h *AuthHandler) SignOut(c echo.Context) error {
	var req RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid sign-out input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.userUC.SignOut(c.Request().Context(), &usecase.SignOutInput{RefreshToken: req.RefreshToken}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Signed out")
}

func (h *AuthHandler) SignOutAll(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.userUC.SignOutAll(c.Request().Context(), actor.UserID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Signed out of all sessions")
}

// SessionResponse mirrors the client's session view.
type SessionResponse struct {
	User     *UserView              `json:"user"`
	Role     entity.Role            `json:"role"`
	IsStaff  bool                   `json:"is_staff"`
	Sessions []*entity.RefreshToken `json:"sessions"`
}

func (h *AuthHandler) GetSession(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}

	session, err := h.sessionUC.GetSession(c.Request().Context(), actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &SessionResponse{
		User:     newUserView(session.User),
		Role:     session.Role,
		IsStaff:  session.IsStaff,
		Sessions: session.Sessions,
	})
}

func (h *AuthHandler) RevokeSession(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}
	sessionID, ok := uuidParam(c, "id")
	if !ok {
		return response.InvalidID(c, "session")
	}

	if err := h.sessionUC.RevokeSession(c.Request().Context(), actor.UserID, sessionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Session revoked")
}
