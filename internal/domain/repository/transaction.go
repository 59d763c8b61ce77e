package repository

import "context"

// TransactionManager runs a unit of work inside one database transaction.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise. Every
	// repository obtained from the factory shares the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewAuthRepository() AuthRepository
	NewRefreshTokenRepository() RefreshTokenRepository
	NewRoleRepository() RoleRepository
	NewProductRepository() ProductRepository
	NewOrderRepository() OrderRepository
	NewCustomizationRepository() CustomizationRepository
	NewNotificationRepository() NotificationRepository
	NewAddressRepository() AddressRepository
}
