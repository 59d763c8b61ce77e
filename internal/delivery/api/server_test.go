package api

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockSvc "storefront/internal/mocks/service"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type testServer struct {
	echo        *echo.Echo
	tokens      *mockSvc.MockTokenService
	cartUC      *mockUC.MockCartUsecase
	dashboardUC *mockUC.MockDashboardUsecase
}

// newTestServer wires the real middleware chain and routes over mocked usecases.
// Token "user", "moderator" or "admin" authenticates with that role.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = "test"
	cfg.HTTP.MaxRequestBodySize = "1KB"
	logger := slog.New(slog.DiscardHandler)

	ts := &testServer{
		tokens:      mockSvc.NewMockTokenService(t),
		cartUC:      mockUC.NewMockCartUsecase(t),
		dashboardUC: mockUC.NewMockDashboardUsecase(t),
	}
	userID := uuid.New()
	ts.tokens.EXPECT().ValidateAccessToken(mock.Anything).RunAndReturn(func(token string) (*service.Claims, error) {
		if _, ok := entity.ParseRole(token); !ok {
			return nil, errors.New("token is malformed")
		}

		return &service.Claims{UserID: userID, Roles: []string{token}}, nil
	}).Maybe()

	r := router.NewRouter(router.RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
			UserUC:    mockUC.NewMockUserUsecase(t),
			SessionUC: mockUC.NewMockSessionUsecase(t),
			CartUC:    ts.cartUC,
			Logger:    logger,
		}),
		CatalogHandler:       handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: mockUC.NewMockCatalogUsecase(t)}),
		CartHandler:          handler.NewCartHandler(handler.CartHandlerParams{CartUC: ts.cartUC}),
		OrderHandler:         handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: mockUC.NewMockOrderUsecase(t)}),
		CustomizationHandler: handler.NewCustomizationHandler(handler.CustomizationHandlerParams{CustomizationUC: mockUC.NewMockCustomizationUsecase(t)}),
		WishlistHandler:      handler.NewWishlistHandler(handler.WishlistHandlerParams{WishlistUC: mockUC.NewMockWishlistUsecase(t)}),
		NotificationHandler:  handler.NewNotificationHandler(handler.NotificationHandlerParams{NotificationUC: mockUC.NewMockNotificationUsecase(t)}),
		DeviceHandler:        handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: mockUC.NewMockDeviceUsecase(t), Logger: logger}),
		ProfileHandler:       handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: mockUC.NewMockProfileUsecase(t)}),
		RoleHandler:          handler.NewRoleHandler(handler.RoleHandlerParams{RoleUC: mockUC.NewMockRoleUsecase(t)}),
		DashboardHandler:     handler.NewDashboardHandler(handler.DashboardHandlerParams{DashboardUC: ts.dashboardUC}),
		UploadHandler:        handler.NewUploadHandler(handler.UploadHandlerParams{UploadUC: mockUC.NewMockUploadUsecase(t)}),
		StreamHandler:        handler.NewStreamHandler(handler.StreamHandlerParams{RealtimeUC: mockUC.NewMockRealtimeUsecase(t), Logger: logger}),
		AuthMiddleware:       middleware.NewAuthMiddleware(ts.tokens),
		Config:               cfg,
	})

	ts.echo = NewEcho(cfg, logger, nil)
	r.RegisterRoutes(ts.echo)

	return ts
}

func (ts *testServer) do(method, target, token, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	return rec
}

func TestRoutes_BackOfficeAccess(t *testing.T) {
	ts := newTestServer(t)
	ts.dashboardUC.EXPECT().GetStats(mock.Anything).Return(&entity.DashboardStats{}, nil).Times(2)

	tests := []struct {
		name     string
		target   string
		token    string
		wantCode int
	}{
		{name: "anonymous", target: "/api/v1/admin/dashboard", wantCode: http.StatusUnauthorized},
		{name: "bad token", target: "/api/v1/admin/dashboard", token: "forged", wantCode: http.StatusUnauthorized},
		{name: "shopper", target: "/api/v1/admin/dashboard", token: "user", wantCode: http.StatusForbidden},
		{name: "moderator", target: "/api/v1/admin/dashboard", token: "moderator", wantCode: http.StatusOK},
		{name: "admin", target: "/api/v1/admin/dashboard", token: "admin", wantCode: http.StatusOK},
		{name: "moderator on staff roles", target: "/api/v1/admin/roles", token: "moderator", wantCode: http.StatusForbidden},
		{name: "moderator on catalog", target: "/api/v1/admin/products", token: "moderator", wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(http.MethodGet, tt.target, tt.token, "", nil)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestRoutes_GuestCart(t *testing.T) {
	ts := newTestServer(t)
	ts.cartUC.EXPECT().
		GetCart(mock.Anything, entity.CartOwner{GuestToken: "guest-9"}).
		Return(&usecase.CartOutput{}, nil)

	rec := ts.do(http.MethodGet, "/api/v1/cart", "", "", map[string]string{"X-Cart-Id": "guest-9"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestRoutes_BodyLimit(t *testing.T) {
	ts := newTestServer(t)

	body := `{"product_id":"` + uuid.NewString() + `","quantity":1,"pad":"` + strings.Repeat("x", 2048) + `"}`
	rec := ts.do(http.MethodPost, "/api/v1/cart/items", "", body, nil)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestRoutes_HealthAndUnknownPath(t *testing.T) {
	ts := newTestServer(t)

	assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/health", "", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/api/v1/nope", "", "", nil).Code)
}
