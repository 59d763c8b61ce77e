// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"
	"strconv"

	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/bytes"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	// UploadPath is exempt from the global body limit and carries its own.
	UploadPath = "/admin/uploads"

	apiPrefix              = "/api/v1"
	defaultUploadBodyLimit = 5 << 20
	multipartOverhead      = 64 << 10
)

type RouterParams struct {
	fx.In

	AuthHandler          *handler.AuthHandler
	CatalogHandler       *handler.CatalogHandler
	CartHandler          *handler.CartHandler
	OrderHandler         *handler.OrderHandler
	CustomizationHandler *handler.CustomizationHandler
	WishlistHandler      *handler.WishlistHandler
	NotificationHandler  *handler.NotificationHandler
	DeviceHandler        *handler.DeviceHandler
	ProfileHandler       *handler.ProfileHandler
	RoleHandler          *handler.RoleHandler
	DashboardHandler     *handler.DashboardHandler
	UploadHandler        *handler.UploadHandler
	StreamHandler        *handler.StreamHandler
	AuthMiddleware       *middleware.AuthMiddleware
	Config               *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{RouterParams: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authn := r.AuthMiddleware.Authenticate
	optional := r.AuthMiddleware.OptionalAuth

	v1 := e.Group(apiPrefix)

	authGroup := v1.Group("/auth", r.authRateLimiter()...)
	{
		authGroup.POST("/signup", r.AuthHandler.SignUp)
		authGroup.POST("/signin", r.AuthHandler.SignIn)
		authGroup.POST("/google", r.AuthHandler.SignInWithGoogle)
		authGroup.POST("/refresh", r.AuthHandler.Refresh)
		authGroup.POST("/signout", r.AuthHandler.SignOut)
		authGroup.POST("/signout-all", r.AuthHandler.SignOutAll, authn)
		authGroup.GET("/session", r.AuthHandler.GetSession, authn)
		authGroup.DELETE("/sessions/:id", r.AuthHandler.RevokeSession, authn)
	}

	// Public catalog
	v1.GET("/products", r.CatalogHandler.ListProducts)
	v1.GET("/products/:id", r.CatalogHandler.GetProduct)
	v1.GET("/categories", r.CatalogHandler.ListCategories)
	v1.GET("/categories/:slug", r.CatalogHandler.GetCategory)

	// Guests are identified by X-Cart-Id.
	cartGroup := v1.Group("/cart", optional)
	{
		cartGroup.GET("", r.CartHandler.GetCart)
		cartGroup.DELETE("", r.CartHandler.Clear)
		cartGroup.POST("/items", r.CartHandler.AddItem)
		cartGroup.PATCH("/items/:productId", r.CartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:productId", r.CartHandler.RemoveItem)
		cartGroup.POST("/quote", r.CartHandler.Quote)
	}

	ordersGroup := v1.Group("/orders")
	{
		ordersGroup.POST("", r.OrderHandler.PlaceOrder, optional)
		ordersGroup.GET("", r.OrderHandler.ListMyOrders, authn)
		ordersGroup.GET("/stream", r.StreamHandler.Orders, authn)
		ordersGroup.GET("/:id", r.OrderHandler.GetOrder, optional)
		ordersGroup.GET("/:id/qrcode", r.OrderHandler.TrackingQRCode, optional)
	}

	customizationsGroup := v1.Group("/customizations")
	{
		customizationsGroup.POST("", r.CustomizationHandler.Submit, optional)
		customizationsGroup.GET("/mine", r.CustomizationHandler.ListMine, authn)
	}

	wishlistGroup := v1.Group("/wishlist", authn)
	{
		wishlistGroup.GET("", r.WishlistHandler.List)
		wishlistGroup.POST("", r.WishlistHandler.Add)
		wishlistGroup.GET("/:productId", r.WishlistHandler.Contains)
		wishlistGroup.DELETE("/:productId", r.WishlistHandler.Remove)
	}

	notificationsGroup := v1.Group("/notifications", authn)
	{
		notificationsGroup.GET("", r.NotificationHandler.List)
		notificationsGroup.GET("/unread-count", r.NotificationHandler.UnreadCount)
		notificationsGroup.GET("/stream", r.StreamHandler.Notifications)
		notificationsGroup.POST("/read-all", r.NotificationHandler.MarkAllRead)
		notificationsGroup.POST("/:id/read", r.NotificationHandler.MarkRead)
	}

	devicesGroup := v1.Group("/devices", authn)
	{
		devicesGroup.POST("", r.DeviceHandler.RegisterDevice)
		devicesGroup.GET("", r.DeviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.DeviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.DeviceHandler.DeactivateDevice)
	}

	profileGroup := v1.Group("/profile", authn)
	{
		profileGroup.GET("", r.ProfileHandler.GetProfile)
		profileGroup.PATCH("", r.ProfileHandler.UpdateProfile)
	}

	addressesGroup := v1.Group("/addresses", authn)
	{
		addressesGroup.GET("", r.ProfileHandler.ListAddresses)
		addressesGroup.POST("", r.ProfileHandler.CreateAddress)
		addressesGroup.PUT("/:id", r.ProfileHandler.UpdateAddress)
		addressesGroup.DELETE("/:id", r.ProfileHandler.DeleteAddress)
		addressesGroup.POST("/:id/default", r.ProfileHandler.SetDefaultAddress)
	}

	v1.GET("/roles/check", r.RoleHandler.CheckRole, authn)

	r.registerAdminRoutes(v1)
}

// registerAdminRoutes mounts the back office. Moderators work the queues;
// catalog, broadcasts, staff and uploads need admin.
func (r *router) registerAdminRoutes(v1 *echo.Group) {
	admin := v1.Group("/admin", r.AuthMiddleware.Authenticate, r.AuthMiddleware.RequireRole(entity.RoleModerator))
	adminOnly := r.AuthMiddleware.RequireRole(entity.RoleAdmin)

	admin.GET("/dashboard", r.DashboardHandler.GetStats)

	ordersGroup := admin.Group("/orders")
	{
		ordersGroup.GET("", r.OrderHandler.ListOrders)
		ordersGroup.GET("/stream", r.StreamHandler.Orders)
		ordersGroup.GET("/:id", r.OrderHandler.GetOrder)
		ordersGroup.PATCH("/:id/status", r.OrderHandler.UpdateStatus)
	}

	customizationsGroup := admin.Group("/customizations")
	{
		customizationsGroup.GET("", r.CustomizationHandler.List)
		customizationsGroup.GET("/stream", r.StreamHandler.Customizations)
		customizationsGroup.PATCH("/:id/review", r.CustomizationHandler.Review)
		customizationsGroup.POST("/:id/quote", r.CustomizationHandler.Quote)
		customizationsGroup.DELETE("/:id", r.CustomizationHandler.Delete)
	}

	productsGroup := admin.Group("/products", adminOnly)
	{
		productsGroup.GET("", r.CatalogHandler.AdminListProducts)
		productsGroup.POST("", r.CatalogHandler.CreateProduct)
		productsGroup.PATCH("/:id", r.CatalogHandler.UpdateProduct)
		productsGroup.DELETE("/:id", r.CatalogHandler.DeleteProduct)
	}

	categoriesGroup := admin.Group("/categories", adminOnly)
	{
		categoriesGroup.POST("", r.CatalogHandler.CreateCategory)
		categoriesGroup.PUT("/:id", r.CatalogHandler.UpdateCategory)
		categoriesGroup.DELETE("/:id", r.CatalogHandler.DeleteCategory)
	}

	notificationsGroup := admin.Group("/notifications", adminOnly)
	{
		notificationsGroup.POST("", r.NotificationHandler.Send)
		notificationsGroup.DELETE("/:id", r.NotificationHandler.Delete)
	}

	rolesGroup := admin.Group("/roles", adminOnly)
	{
		rolesGroup.GET("", r.RoleHandler.ListStaff)
		rolesGroup.POST("", r.RoleHandler.AssignRole)
		rolesGroup.DELETE("/:userId", r.RoleHandler.RevokeRole)
	}

	uploadsGroup := admin.Group("/uploads", adminOnly)
	{
		uploadsGroup.POST("", r.UploadHandler.UploadImage, echomiddleware.BodyLimit(r.uploadBodyLimit()))
		uploadsGroup.DELETE("", r.UploadHandler.DeleteImage, echomiddleware.BodyLimit(r.Config.HTTP.MaxRequestBodySize))
	}
}

// authRateLimiter throttles credential endpoints per client IP.
func (r *router) authRateLimiter() []echo.MiddlewareFunc {
	cfg := r.Config.RateLimit
	if cfg == nil || !cfg.Enabled || cfg.RequestsPerSecond <= 0 {
		return nil
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.RequestsPerSecond),
		Burst:     cfg.Burst,
		ExpiresIn: cfg.ExpiresIn,
	})

	return []echo.MiddlewareFunc{echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, _ error) error {
			return response.Error(c, http.StatusForbidden, "RATE_LIMIT_IDENTIFIER", "Unable to identify client", nil)
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, slow down", nil)
		},
	})}
}

// uploadBodyLimit leaves room for multipart framing around the largest accepted image.
func (r *router) uploadBodyLimit() string {
	limit := int64(defaultUploadBodyLimit)
	if r.Config.Storage != nil && r.Config.Storage.MaxUploadSize != "" {
		if parsed, err := bytes.Parse(r.Config.Storage.MaxUploadSize); err == nil {
			limit = parsed
		}
	}

	return strconv.FormatInt(limit+multipartOverhead, 10) + "B"
}
