package service

import (
	"context"
	"time"

	"admin-dashboard/internal/model"
	"admin-dashboard/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
)

// MockFetcher is a mock implementation of Fetcher.
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Products(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockFetcher) Orders(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

var fixedNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func sequentialIDs(prefix string) IDGenerator {
	n := 0
	return func() (string, error) {
		n++
		return prefix + string(rune('0'+n)), nil
	}
}

func testProducts() []model.Product {
	return []model.Product{
		{ID: "p1", Name: "Desk Lamp", Price: 20, Stock: 5, Category: "Home", Rating: 4, Status: model.ProductActive, UpdatedAt: fixedNow.Add(-time.Hour)},
		{ID: "p2", Name: "Keyboard", Price: 45, Stock: 0, Category: "Electronics", Rating: 4.5, Status: model.ProductInactive, UpdatedAt: fixedNow.Add(-2 * time.Hour)},
		{ID: "p3", Name: "Old Mouse", Price: 10, Stock: 1, Category: "Electronics", Rating: 3, Status: model.ProductActive, IsDeleted: true},
	}
}

func newStore(products []model.Product, orders []model.Order) *store.Store {
	initial := model.NewState()
	if products != nil {
		initial.Products.Items = products
	}
	if orders != nil {
		initial.Orders.Items = orders
	}
	return store.New(initial, nil, zerolog.Nop())
}
