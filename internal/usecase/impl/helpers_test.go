package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{MaxAddresses: 10},
		Checkout: &config.CheckoutConfig{
			FreeDeliveryThreshold: decimal.NewFromInt(999),
			DeliveryFee:           decimal.NewFromInt(99),
			MaxQuantityPerItem:    99,
		},
		Storage:    &config.StorageConfig{MaxUploadSize: "1KB"},
		ChangeFeed: &config.ChangeFeedConfig{},
	}
}

// expectTx runs the unit of work against factory and returns its error.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestDescribeProblems_SortedByField(t *testing.T) {
	got := describeProblems(map[string]string{"phone": "bad", "city": "missing"})

	assert.Equal(t, "city: missing; phone: bad", got)
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, isValidEmail("shopper@example.com"))
	assert.False(t, isValidEmail("shopper"))
	assert.False(t, isValidEmail(""))
}
