package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDashboard(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)
	order := func(status OrderStatus, total int64, daysAgo int) *Order {
		return &Order{Status: status, Total: decimal.NewFromInt(total), CreatedAt: now.AddDate(0, 0, -daysAgo)}
	}

	orders := []*Order{
		order(OrderStatusPlaced, 500, 0),
		order(OrderStatusPacked, 300, 0),
		order(OrderStatusDelivered, 1200, 2),
		order(OrderStatusCancelled, 100, 6),
		order(OrderStatusShipped, 900, 30),
	}
	products := []*Product{
		{Category: "Hoodies", Stock: 3},
		{Category: "Hoodies", Stock: 20},
		{Category: "Caps", Stock: 9},
		{Category: "Mugs", Stock: 100},
		{Category: "Tees", Stock: 15},
		{Category: "Tees", Stock: 15},
		{Category: "Bags", Stock: 15},
		{Category: "Socks", Stock: 15},
	}

	stats := BuildDashboard(orders, products, 12, now)

	assert.Equal(t, 5, stats.TotalOrders)
	assert.True(t, decimal.NewFromInt(3000).Equal(stats.TotalRevenue))
	assert.Equal(t, 2, stats.PendingOrders)
	assert.Equal(t, 1, stats.CompletedOrders)
	assert.Equal(t, 8, stats.TotalProducts)
	assert.Equal(t, 2, stats.LowStockProducts)
	assert.Equal(t, int64(12), stats.TotalUsers)

	require.Len(t, stats.RevenueByDay, DashboardWindowDays)
	assert.Equal(t, "2024-06-04", stats.RevenueByDay[0].Date)
	assert.Equal(t, "2024-06-10", stats.RevenueByDay[6].Date)
	assert.True(t, decimal.NewFromInt(800).Equal(stats.RevenueByDay[6].Revenue))
	assert.Equal(t, 2, stats.RevenueByDay[6].Orders)
	assert.True(t, decimal.NewFromInt(1200).Equal(stats.RevenueByDay[4].Revenue))
	assert.True(t, decimal.NewFromInt(100).Equal(stats.RevenueByDay[0].Revenue))

	assert.Equal(t, []StatusCount{
		{Status: OrderStatusPlaced, Count: 1},
		{Status: OrderStatusPacked, Count: 1},
		{Status: OrderStatusShipped, Count: 1},
		{Status: OrderStatusDelivered, Count: 1},
		{Status: OrderStatusCancelled, Count: 1},
	}, stats.StatusDistribution)

	require.Len(t, stats.TopCategories, TopCategoryLimit)
	assert.Equal(t, CategoryCount{Category: "Hoodies", Count: 2}, stats.TopCategories[0])
	assert.Equal(t, CategoryCount{Category: "Tees", Count: 2}, stats.TopCategories[1])
	assert.Equal(t, CategoryCount{Category: "Bags", Count: 1}, stats.TopCategories[2])
}

func TestBuildDashboard_Empty(t *testing.T) {
	stats := BuildDashboard(nil, nil, 0, time.Now())

	assert.Zero(t, stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.IsZero())
	assert.Len(t, stats.RevenueByDay, DashboardWindowDays)
	assert.Empty(t, stats.TopCategories)
}
