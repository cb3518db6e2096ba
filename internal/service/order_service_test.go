package service

import (
	"context"
	"errors"
	"testing"

	"admin-dashboard/internal/listing"
	"admin-dashboard/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testOrders() []model.Order {
	return []model.Order{
		{ID: "o2", CustomerName: "Grace", Items: []model.OrderItem{{ProductID: "p1", Name: "Desk Lamp", Price: 20, Quantity: 1}}, Total: 20, Status: model.OrderCompleted, CreatedAt: fixedNow.AddDate(0, 0, -1)},
		{ID: "o1", CustomerName: "Ada", Items: []model.OrderItem{{ProductID: "p2", Name: "Keyboard", Price: 45, Quantity: 2}}, Total: 90, Status: model.OrderPending, CreatedAt: fixedNow.AddDate(0, 0, -2)},
	}
}

func newOrderService(fetcher Fetcher) OrderService {
	return NewOrderService(newStore(testProducts(), testOrders()), fetcher, listing.DefaultPageSize, zerolog.Nop(),
		WithOrderClock(fixedClock),
		WithOrderIDs(sequentialIDs("o_new")),
	)
}

func TestOrderService_Load(t *testing.T) {
	ctx := context.Background()
	fetcher := new(MockFetcher)
	fetcher.On("Orders", mock.Anything).Return([]model.Order{{ID: "o9", Status: model.OrderPending, Items: []model.OrderItem{}}}, nil).Once()
	fetcher.On("Orders", mock.Anything).Return(nil, errors.New("fixture unavailable")).Once()

	svc := newOrderService(fetcher)
	_, err := svc.AddToCart(ctx, "p1")
	require.NoError(t, err)

	require.NoError(t, svc.Load(ctx))
	list := svc.List(ctx, listing.OrderQuery{})
	require.Len(t, list.Items, 1)
	assert.Equal(t, 1, svc.Cart(ctx).ItemCount, "cart survives a reload")

	err = svc.Load(ctx)
	require.Error(t, err)
	list = svc.List(ctx, listing.OrderQuery{})
	require.NotNil(t, list.Error)
	assert.Equal(t, model.FetchOrdersFailed, *list.Error)
	assert.Len(t, list.Items, 1, "items are kept on failure")

	fetcher.AssertExpectations(t)
}

func TestOrderService_List(t *testing.T) {
	svc := newOrderService(nil)
	ctx := context.Background()

	list := svc.List(ctx, listing.OrderQuery{})
	require.Len(t, list.Items, 2)
	assert.Equal(t, "o2", list.Items[0].ID)

	list = svc.List(ctx, listing.OrderQuery{Status: string(model.OrderPending)})
	require.Len(t, list.Items, 1)
	assert.Equal(t, "o1", list.Items[0].ID)

	list = svc.List(ctx, listing.OrderQuery{PageSize: 1, Page: 2})
	require.Len(t, list.Items, 1)
	assert.Equal(t, 2, list.TotalPages)
}

func TestOrderService_GetByID(t *testing.T) {
	svc := newOrderService(nil)

	o, err := svc.GetByID(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", o.CustomerName)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrOrderNotFound)
}

func TestOrderService_AddToCart(t *testing.T) {
	tests := []struct {
		name      string
		productID string
		wantErr   error
	}{
		{name: "Visible product", productID: "p1"},
		{name: "Inactive product is still purchasable", productID: "p2"},
		{name: "Soft-deleted product", productID: "p3", wantErr: model.ErrProductNotFound},
		{name: "Unknown product", productID: "p404", wantErr: model.ErrProductNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newOrderService(nil)

			cart, err := svc.AddToCart(context.Background(), tt.productID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, svc.Cart(context.Background()).Items)
				return
			}
			require.NoError(t, err)
			require.Len(t, cart.Items, 1)
			assert.Equal(t, tt.productID, cart.Items[0].ProductID)
			assert.Equal(t, 1, cart.Items[0].Quantity)
		})
	}
}

func TestOrderService_CartMutations(t *testing.T) {
	ctx := context.Background()
	svc := newOrderService(nil)

	_, err := svc.AddToCart(ctx, "p1")
	require.NoError(t, err)
	cart, err := svc.AddToCart(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.InDelta(t, 40.0, cart.Total, 1e-9)

	cart, err = svc.UpdateCartQuantity(ctx, "p1", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, cart.ItemCount)

	_, err = svc.UpdateCartQuantity(ctx, "p1", 0)
	assert.ErrorIs(t, err, model.ErrInvalidQuantity)

	_, err = svc.UpdateCartQuantity(ctx, "p2", 3)
	assert.ErrorIs(t, err, model.ErrProductNotFound)

	_, err = svc.AddToCart(ctx, "p2")
	require.NoError(t, err)
	cart, err = svc.RemoveFromCart(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)

	_, err = svc.RemoveFromCart(ctx, "p1")
	assert.ErrorIs(t, err, model.ErrProductNotFound)

	cart, err = svc.ClearCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)
}

func TestOrderService_Checkout(t *testing.T) {
	tests := []struct {
		name      string
		fillCart  bool
		customer  string
		wantErr   error
		wantTotal float64
	}{
		{name: "Success", fillCart: true, customer: "  Linus  ", wantTotal: 65},
		{name: "Empty cart", customer: "Linus", wantErr: model.ErrEmptyCart},
		{name: "Missing customer", fillCart: true, customer: "   ", wantErr: model.ErrCustomerNameRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc := newOrderService(nil)
			if tt.fillCart {
				_, err := svc.AddToCart(ctx, "p1")
				require.NoError(t, err)
				_, err = svc.AddToCart(ctx, "p2")
				require.NoError(t, err)
			}

			order, err := svc.Checkout(ctx, model.CheckoutRequest{CustomerName: tt.customer})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, order)
				assert.Equal(t, 2, svc.List(ctx, listing.OrderQuery{}).TotalItems)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "o_new1", order.ID)
			assert.Equal(t, "Linus", order.CustomerName)
			assert.Equal(t, model.OrderPending, order.Status)
			assert.Equal(t, fixedNow, order.CreatedAt)
			assert.InDelta(t, tt.wantTotal, order.Total, 1e-9)
			assert.Len(t, order.Items, 2)

			list := svc.List(ctx, listing.OrderQuery{})
			assert.Equal(t, order.ID, list.Items[0].ID, "new orders go first")
			assert.Empty(t, svc.Cart(ctx).Items)
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		status     model.OrderStatus
		wantErr    error
		wantStatus model.OrderStatus
	}{
		{name: "Pending to completed", id: "o1", status: model.OrderCompleted, wantStatus: model.OrderCompleted},
		{name: "Pending to cancelled", id: "o1", status: model.OrderCancelled, wantStatus: model.OrderCancelled},
		{name: "Same status is a no-op", id: "o2", status: model.OrderCompleted, wantStatus: model.OrderCompleted},
		{name: "Completed cannot reopen", id: "o2", status: model.OrderPending, wantErr: model.ErrInvalidTransition},
		{name: "Unknown status", id: "o1", status: "SHIPPED", wantErr: model.ErrInvalidStatus},
		{name: "Unknown order", id: "o404", status: model.OrderCompleted, wantErr: model.ErrOrderNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newOrderService(nil)

			o, err := svc.UpdateStatus(context.Background(), tt.id, tt.status)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, o)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, o.Status)
		})
	}
}
