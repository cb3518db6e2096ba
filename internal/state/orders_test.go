package state

import (
	"testing"
	"time"

	"admin-dashboard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyOrders() model.OrdersState {
	return model.NewState().Orders
}

func TestAddToCart(t *testing.T) {
	s := emptyOrders()

	s = AddToCart(s, "P001", "Product 1", 10)
	s = AddToCart(s, "P002", "Product 2", 20)
	s = AddToCart(s, "P001", "Renamed", 99)

	require.Len(t, s.Cart, 2)
	assert.Equal(t, model.CartItem{ProductID: "P001", Name: "Product 1", Price: 10, Quantity: 2}, s.Cart[0])
	assert.Equal(t, model.CartItem{ProductID: "P002", Name: "Product 2", Price: 20, Quantity: 1}, s.Cart[1])
}

func TestUpdateCartQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		expected int
	}{
		{name: "Set to five", quantity: 5, expected: 5},
		{name: "Zero clamps to one", quantity: 0, expected: 1},
		{name: "Negative clamps to one", quantity: -3, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := AddToCart(emptyOrders(), "P001", "Product 1", 10)
			next := UpdateCartQuantity(s, "P001", tt.quantity)
			assert.Equal(t, tt.expected, next.Cart[0].Quantity)
			assert.Equal(t, 1, s.Cart[0].Quantity, "input snapshot unchanged")
		})
	}

	t.Run("Unknown product is a no-op", func(t *testing.T) {
		s := AddToCart(emptyOrders(), "P001", "Product 1", 10)
		assert.Equal(t, s.Cart, UpdateCartQuantity(s, "P404", 3).Cart)
	})
}

func TestRemoveFromCartAndClear(t *testing.T) {
	s := AddToCart(emptyOrders(), "P001", "Product 1", 10)
	s = AddToCart(s, "P002", "Product 2", 20)
	s = AddToCart(s, "P003", "Product 3", 30)

	removed := RemoveFromCart(s, "P002")
	require.Len(t, removed.Cart, 2)
	assert.Equal(t, "P001", removed.Cart[0].ProductID)
	assert.Equal(t, "P003", removed.Cart[1].ProductID)
	assert.Len(t, s.Cart, 3, "input snapshot unchanged")

	assert.Equal(t, removed.Cart, RemoveFromCart(removed, "P404").Cart)
	assert.Empty(t, ClearCart(removed).Cart)
}

func TestCreateOrder(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
	s := AddToCart(emptyOrders(), "P001", "Product 1", 10)
	s = AddToCart(s, "P001", "Product 1", 10)
	s = AddToCart(s, "P002", "Product 2", 2.5)
	s.Items = []model.Order{{ID: "o_old", Status: model.OrderCompleted, Total: 5}}
	cartBefore := append([]model.CartItem(nil), s.Cart...)

	next, order, err := CreateOrder(s, Checkout{ID: "o_new", CustomerName: "Test Customer", CreatedAt: now})
	require.NoError(t, err)

	assert.Empty(t, next.Cart)
	require.Len(t, next.Items, 2)
	assert.Equal(t, order, next.Items[0])
	assert.Equal(t, "o_old", next.Items[1].ID)

	assert.Equal(t, "o_new", order.ID)
	assert.Equal(t, "Test Customer", order.CustomerName)
	assert.Equal(t, model.OrderPending, order.Status)
	assert.Equal(t, now, order.CreatedAt)
	assert.InDelta(t, 22.5, order.Total, 1e-9)
	assert.Equal(t, cartBefore, order.Items)

	// Later cart activity never reaches the frozen order items.
	after := AddToCart(next, "P001", "Product 1", 10)
	after = UpdateCartQuantity(after, "P001", 9)
	assert.Equal(t, 2, after.Items[0].Items[0].Quantity)
}

func TestCreateOrder_EmptyCart(t *testing.T) {
	s := emptyOrders()
	next, _, err := CreateOrder(s, Checkout{ID: "o_1", CustomerName: "Test Customer"})
	assert.Equal(t, model.ErrEmptyCart, err)
	assert.Empty(t, next.Items)
}

func TestUpdateOrderStatus(t *testing.T) {
	base := func() model.OrdersState {
		s := emptyOrders()
		s.Items = []model.Order{
			{ID: "o_1", Status: model.OrderPending, Total: 10},
			{ID: "o_2", Status: model.OrderCompleted, Total: 20},
			{ID: "o_3", Status: model.OrderCancelled, Total: 30},
		}
		return s
	}

	tests := []struct {
		name        string
		id          string
		status      model.OrderStatus
		expected    model.OrderStatus
		expectedErr error
	}{
		{name: "Pending to completed", id: "o_1", status: model.OrderCompleted, expected: model.OrderCompleted},
		{name: "Pending to cancelled", id: "o_1", status: model.OrderCancelled, expected: model.OrderCancelled},
		{name: "Same status is a no-op", id: "o_2", status: model.OrderCompleted, expected: model.OrderCompleted},
		{name: "Completed back to pending", id: "o_2", status: model.OrderPending, expected: model.OrderCompleted, expectedErr: model.ErrInvalidTransition},
		{name: "Cancelled to completed", id: "o_3", status: model.OrderCompleted, expected: model.OrderCancelled, expectedErr: model.ErrInvalidTransition},
		{name: "Unknown status", id: "o_1", status: "SHIPPED", expected: model.OrderPending, expectedErr: model.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base()
			next, err := UpdateOrderStatus(s, tt.id, tt.status)
			if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr, err)
			} else {
				require.NoError(t, err)
			}
			o, ok := FindOrder(next.Items, tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.expected, o.Status)
		})
	}

	t.Run("Unknown id is a no-op", func(t *testing.T) {
		s := base()
		next, err := UpdateOrderStatus(s, "o_404", model.OrderCompleted)
		require.NoError(t, err)
		assert.Equal(t, s.Items, next.Items)
	})
}

func TestOrdersLoadKeepsCart(t *testing.T) {
	s := AddToCart(emptyOrders(), "P001", "Product 1", 10)

	loading := OrdersLoading(s)
	assert.True(t, loading.Loading)

	loaded := OrdersLoaded(loading, []model.Order{{ID: "o_1", Status: model.OrderPending}})
	assert.False(t, loaded.Loading)
	assert.Len(t, loaded.Items, 1)
	assert.Len(t, loaded.Cart, 1)

	failed := OrdersLoadFailed(OrdersLoading(loaded))
	require.NotNil(t, failed.Error)
	assert.Equal(t, model.FetchOrdersFailed, *failed.Error)
	assert.Len(t, failed.Items, 1)
}
