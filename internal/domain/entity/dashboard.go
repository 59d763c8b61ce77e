package entity

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardWindowDays is how many days of revenue the dashboard charts.
const DashboardWindowDays = 7

// TopCategoryLimit caps the category breakdown.
const TopCategoryLimit = 5

// DailyRevenue is one point of the revenue chart.
type DailyRevenue struct {
	Date    string          `json:"date"` // YYYY-MM-DD in the dashboard's location.
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

// StatusCount is one slice of the order status distribution.
type StatusCount struct {
	Status OrderStatus `json:"status"`
	Count  int         `json:"count"`
}

// CategoryCount is the number of products in a category.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// DashboardStats is the admin console summary.
type DashboardStats struct {
	TotalOrders        int             `json:"total_orders"`
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	PendingOrders      int             `json:"pending_orders"`
	CompletedOrders    int             `json:"completed_orders"`
	TotalProducts      int             `json:"total_products"`
	LowStockProducts   int             `json:"low_stock_products"`
	TotalUsers         int64           `json:"total_users"`
	RevenueByDay       []DailyRevenue  `json:"revenue_by_day"`
	StatusDistribution []StatusCount   `json:"status_distribution"`
	TopCategories      []CategoryCount `json:"top_categories"`
}

// BuildDashboard aggregates orders and products as of now. Days are bucketed
// in now's location, oldest first.
func BuildDashboard(orders []*Order, products []*Product, totalUsers int64, now time.Time) *DashboardStats {
	stats := &DashboardStats{
		TotalOrders:   len(orders),
		TotalRevenue:  decimal.Zero,
		TotalProducts: len(products),
		TotalUsers:    totalUsers,
	}

	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	days := make([]DailyRevenue, DashboardWindowDays)
	dayIndex := make(map[string]int, DashboardWindowDays)
	for i := range DashboardWindowDays {
		day := today.AddDate(0, 0, i-(DashboardWindowDays-1)).Format(time.DateOnly)
		days[i] = DailyRevenue{Date: day, Revenue: decimal.Zero}
		dayIndex[day] = i
	}

	statusCounts := make(map[OrderStatus]int, len(OrderStatuses))
	for _, o := range orders {
		stats.TotalRevenue = stats.TotalRevenue.Add(o.Total)
		statusCounts[o.Status]++

		switch {
		case o.Status.IsPending():
			stats.PendingOrders++
		case o.Status == OrderStatusDelivered:
			stats.CompletedOrders++
		}

		if idx, ok := dayIndex[o.CreatedAt.In(loc).Format(time.DateOnly)]; ok {
			days[idx].Revenue = days[idx].Revenue.Add(o.Total)
			days[idx].Orders++
		}
	}
	stats.RevenueByDay = days

	for _, s := range OrderStatuses {
		if n := statusCounts[s]; n > 0 {
			stats.StatusDistribution = append(stats.StatusDistribution, StatusCount{Status: s, Count: n})
		}
	}

	categoryCounts := make(map[string]int)
	for _, p := range products {
		if p.IsLowStock() {
			stats.LowStockProducts++
		}
		categoryCounts[p.Category]++
	}

	for name, n := range categoryCounts {
		stats.TopCategories = append(stats.TopCategories, CategoryCount{Category: name, Count: n})
	}
	slices.SortFunc(stats.TopCategories, func(a, b CategoryCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}

		return cmp.Compare(a.Category, b.Category)
	})
	if len(stats.TopCategories) > TopCategoryLimit {
		stats.TopCategories = stats.TopCategories[:TopCategoryLimit]
	}

	return stats
}
