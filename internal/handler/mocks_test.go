package handler

import (
	"context"

	"admin-dashboard/internal/listing"
	"admin-dashboard/internal/metrics"
	"admin-dashboard/internal/model"
	"admin-dashboard/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockProductService is a mock implementation of ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Load(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockProductService) List(ctx context.Context, q listing.ProductQuery) service.ProductList {
	return m.Called(ctx, q).Get(0).(service.ProductList)
}

func (m *MockProductService) Categories(ctx context.Context) []string {
	return m.Called(ctx).Get(0).([]string)
}

func (m *MockProductService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, in model.ProductInput) (*model.Product, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, id string, in model.ProductInput) (*model.Product, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) ToggleStatus(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockOrderService is a mock implementation of OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Load(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockOrderService) List(ctx context.Context, q listing.OrderQuery) service.OrderList {
	return m.Called(ctx, q).Get(0).(service.OrderList)
}

func (m *MockOrderService) GetByID(ctx context.Context, id string) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) Cart(ctx context.Context) service.Cart {
	return m.Called(ctx).Get(0).(service.Cart)
}

func (m *MockOrderService) AddToCart(ctx context.Context, productID string) (service.Cart, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(service.Cart), args.Error(1)
}

func (m *MockOrderService) UpdateCartQuantity(ctx context.Context, productID string, quantity int) (service.Cart, error) {
	args := m.Called(ctx, productID, quantity)
	return args.Get(0).(service.Cart), args.Error(1)
}

func (m *MockOrderService) RemoveFromCart(ctx context.Context, productID string) (service.Cart, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(service.Cart), args.Error(1)
}

func (m *MockOrderService) ClearCart(ctx context.Context) (service.Cart, error) {
	args := m.Called(ctx)
	return args.Get(0).(service.Cart), args.Error(1)
}

func (m *MockOrderService) Checkout(ctx context.Context, req model.CheckoutRequest) (*model.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

// MockDashboardService is a mock implementation of DashboardService.
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Summary(ctx context.Context) metrics.Summary {
	return m.Called(ctx).Get(0).(metrics.Summary)
}
