// Package listing holds the filter, sort and pagination helpers behind the
// product and order list views.
package listing

import (
	"cmp"
	"slices"
	"strings"

	"admin-dashboard/internal/model"
)

// DefaultPageSize is the page size of every list view.
const DefaultPageSize = 10

// Filter value that disables a status or category filter.
const All = "ALL"

// Sort keys for product listings.
const (
	SortByUpdatedAt = "updatedAt"
	SortByPrice     = "price"
)

// Page is one page of a filtered collection. Page numbers start at 1.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// Paginate returns the requested page of items. Pages outside
// [1, TotalPages] yield an empty slice; a non-positive size falls back to
// DefaultPageSize.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(items)
	p := Page[T]{
		Items:      []T{},
		Page:       page,
		PageSize:   size,
		TotalItems: total,
		TotalPages: (total + size - 1) / size,
	}
	if page < 1 || page > p.TotalPages {
		return p
	}
	start := (page - 1) * size
	end := min(start+size, total)
	p.Items = append(p.Items, items[start:end]...)
	return p
}

// ProductQuery selects visible products for the product list.
type ProductQuery struct {
	Search   string
	Status   string
	Category string
	SortBy   string
	Page     int
	PageSize int
}

// FilterProducts drops soft-deleted products, applies the name search and the
// status and category filters, then sorts. Sorting by price is ascending;
// any other key sorts by most recently updated first.
func FilterProducts(items []model.Product, q ProductQuery) []model.Product {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]model.Product, 0, len(items))
	for _, p := range items {
		if !p.Visible() {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if q.Status != "" && q.Status != All && string(p.Status) != q.Status {
			continue
		}
		if q.Category != "" && q.Category != All && p.Category != q.Category {
			continue
		}
		out = append(out, p)
	}

	if q.SortBy == SortByPrice {
		slices.SortStableFunc(out, func(a, b model.Product) int {
			return cmp.Compare(a.Price, b.Price)
		})
	} else {
		slices.SortStableFunc(out, func(a, b model.Product) int {
			return b.UpdatedAt.Compare(a.UpdatedAt)
		})
	}
	return out
}

// Categories lists the distinct categories of visible products in first-seen order.
func Categories(items []model.Product) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range items {
		if !p.Visible() {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// OrderQuery selects orders for the order list.
type OrderQuery struct {
	Status   string
	Page     int
	PageSize int
}

// FilterOrders keeps orders matching the status filter, preserving newest-first order.
func FilterOrders(orders []model.Order, q OrderQuery) []model.Order {
	out := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if q.Status != "" && q.Status != All && string(o.Status) != q.Status {
			continue
		}
		out = append(out, o)
	}
	return out
}
