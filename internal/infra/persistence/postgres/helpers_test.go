package postgres

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := &entity.User{Email: email, Name: "Test " + email}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedProduct(t *testing.T, db *gorm.DB, name, category string, price int64, stock int) *entity.Product {
	t.Helper()

	p := &entity.Product{
		Name:     name,
		Price:    decimal.NewFromInt(price),
		Images:   []string{"https://img.example/" + name + ".jpg"},
		Category: category,
		Stock:    stock,
		IsActive: true,
	}
	require.NoError(t, NewProductRepository(db).Create(context.Background(), p))

	return p
}

func seedOrder(t *testing.T, db *gorm.DB, userID *uuid.UUID, number string, createdAt time.Time) *entity.Order {
	t.Helper()

	o := &entity.Order{
		OrderNumber: number,
		UserID:      userID,
		Items: []entity.OrderItem{{
			ProductID:   uuid.NewString(),
			ProductName: "Tee",
			Quantity:    2,
			Price:       decimal.NewFromInt(500),
		}},
		Total:  decimal.NewFromInt(1000),
		Status: entity.OrderStatusPlaced,
		Customer: entity.CustomerInfo{
			FullName: "Asha", Phone: "9876543210", Address: "12 MG Road",
			City: "Pune", State: "MH", Pincode: "411001",
		},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, NewOrderRepository(db).Create(context.Background(), o))

	return o
}
