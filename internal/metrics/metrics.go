// Package metrics computes read-only aggregate views over a state snapshot.
// Nothing here is cached or persisted; every call recomputes from its input.
package metrics

import (
	"time"

	"admin-dashboard/internal/model"
)

// DefaultDays is the window of the per-day order chart.
const DefaultDays = 7

// DateLayout formats day keys the way a US-locale date string reads.
const DateLayout = "1/2/2006"

// DayCount is the number of orders created on one calendar day.
type DayCount struct {
	Date   string `json:"date"`
	Orders int    `json:"orders"`
}

// StatusCount is one slice of the order status distribution.
type StatusCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Summary bundles every dashboard metric.
type Summary struct {
	TotalProducts      int           `json:"totalProducts"`
	ActiveProducts     int           `json:"activeProducts"`
	TotalOrders        int           `json:"totalOrders"`
	PendingOrders      int           `json:"pendingOrders"`
	Revenue            float64       `json:"revenue"`
	OrdersPerDay       []DayCount    `json:"ordersPerDay"`
	StatusDistribution []StatusCount `json:"statusDistribution"`
}

// Summarize computes all metrics for s. Day boundaries follow now's location.
func Summarize(s model.State, now time.Time) Summary {
	return Summary{
		TotalProducts:      TotalProducts(s.Products.Items),
		ActiveProducts:     ActiveProducts(s.Products.Items),
		TotalOrders:        TotalOrders(s.Orders.Items),
		PendingOrders:      PendingOrders(s.Orders.Items),
		Revenue:            Revenue(s.Orders.Items),
		OrdersPerDay:       OrdersPerDay(s.Orders.Items, now, DefaultDays),
		StatusDistribution: StatusDistribution(s.Orders.Items),
	}
}

// TotalProducts counts products that are not soft-deleted.
func TotalProducts(items []model.Product) int {
	n := 0
	for _, p := range items {
		if p.Visible() {
			n++
		}
	}
	return n
}

// ActiveProducts counts ACTIVE products that are not soft-deleted.
func ActiveProducts(items []model.Product) int {
	n := 0
	for _, p := range items {
		if p.Visible() && p.Status == model.ProductActive {
			n++
		}
	}
	return n
}

// TotalOrders counts all orders.
func TotalOrders(orders []model.Order) int {
	return len(orders)
}

// PendingOrders counts orders still PENDING.
func PendingOrders(orders []model.Order) int {
	n := 0
	for _, o := range orders {
		if o.Status == model.OrderPending {
			n++
		}
	}
	return n
}

// Revenue sums the totals of COMPLETED orders.
func Revenue(orders []model.Order) float64 {
	var sum float64
	for _, o := range orders {
		if o.Status == model.OrderCompleted {
			sum += o.Total
		}
	}
	return sum
}

// OrdersPerDay counts orders for the last days calendar days ending on now's
// date, oldest first, with zero for days without orders.
func OrdersPerDay(orders []model.Order, now time.Time, days int) []DayCount {
	if days <= 0 {
		return []DayCount{}
	}
	loc := now.Location()
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, loc)
	first := today.AddDate(0, 0, -(days - 1))

	out := make([]DayCount, days)
	index := make(map[string]int, days)
	for i := range out {
		key := first.AddDate(0, 0, i).Format(DateLayout)
		out[i] = DayCount{Date: key}
		index[key] = i
	}

	for _, o := range orders {
		key := o.CreatedAt.In(loc).Format(DateLayout)
		if i, ok := index[key]; ok {
			out[i].Orders++
		}
	}
	return out
}

// StatusDistribution counts orders per status in the fixed order
// Pending, Completed, Cancelled.
func StatusDistribution(orders []model.Order) []StatusCount {
	var pending, completed, cancelled int
	for _, o := range orders {
		switch o.Status {
		case model.OrderPending:
			pending++
		case model.OrderCompleted:
			completed++
		case model.OrderCancelled:
			cancelled++
		}
	}
	return []StatusCount{
		{Name: "Pending", Value: pending},
		{Name: "Completed", Value: completed},
		{Name: "Cancelled", Value: cancelled},
	}
}
