package service

import (
	"context"
	"fmt"
	"strings"

	"admin-dashboard/internal/listing"
	"admin-dashboard/internal/model"
	"admin-dashboard/internal/state"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	store    Store
	fetcher  Fetcher
	pageSize int
	now      Clock
	newID    IDGenerator
	logger   zerolog.Logger
}

// OrderOption customises an order service.
type OrderOption func(*orderService)

// WithOrderClock overrides the clock stamping createdAt.
func WithOrderClock(c Clock) OrderOption {
	return func(s *orderService) { s.now = c }
}

// WithOrderIDs overrides the order id generator.
func WithOrderIDs(g IDGenerator) OrderOption {
	return func(s *orderService) { s.newID = g }
}

// NewOrderService creates a new order service.
func NewOrderService(st Store, fetcher Fetcher, pageSize int, logger zerolog.Logger, opts ...OrderOption) OrderService {
	s := &orderService{
		store:    st,
		fetcher:  fetcher,
		pageSize: pageSize,
		now:      defaultClock,
		newID:    NewOrderID,
		logger:   logger.With().Str("service", "order").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load re-runs the order fixture load.
func (s *orderService) Load(ctx context.Context) error {
	if err := s.store.LoadOrders(ctx, s.fetcher.Orders); err != nil {
		s.logger.Error().Err(err).Msg("failed to load orders")
		return fmt.Errorf("failed to load orders: %w", err)
	}
	return nil
}

// List returns one page of orders, newest first.
func (s *orderService) List(ctx context.Context, q listing.OrderQuery) OrderList {
	if q.PageSize <= 0 {
		q.PageSize = s.pageSize
	}
	if q.Page == 0 {
		q.Page = 1
	}

	snap := s.store.Snapshot()
	page := listing.Paginate(listing.FilterOrders(snap.Orders.Items, q), q.Page, q.PageSize)

	return OrderList{
		Page:    page,
		Loading: snap.Orders.Loading,
		Error:   snap.Orders.Error,
	}
}

// GetByID retrieves an order by its ID.
func (s *orderService) GetByID(ctx context.Context, id string) (*model.Order, error) {
	o, ok := state.FindOrder(s.store.Snapshot().Orders.Items, id)
	if !ok {
		s.logger.Debug().Str("order_id", id).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}
	return &o, nil
}

// Cart returns the current cart.
func (s *orderService) Cart(ctx context.Context) Cart {
	return cartOf(s.store.Snapshot())
}

// AddToCart adds one unit of a visible product at its current price.
func (s *orderService) AddToCart(ctx context.Context, productID string) (Cart, error) {
	next, err := s.store.Dispatch(ctx, "cart/add", func(st model.State) (model.State, error) {
		p, ok := state.FindProduct(st.Products.Items, productID)
		if !ok || !p.Visible() {
			return st, model.ErrProductNotFound
		}
		st.Orders = state.AddToCart(st.Orders, p.ID, p.Name, p.Price)
		return st, nil
	})
	if err != nil {
		s.logger.Debug().Err(err).Str("product_id", productID).Msg("add to cart rejected")
		return Cart{}, err
	}

	s.logger.Debug().Str("product_id", productID).Msg("added to cart")
	return cartOf(next), nil
}

// UpdateCartQuantity sets the quantity of an existing cart line.
func (s *orderService) UpdateCartQuantity(ctx context.Context, productID string, quantity int) (Cart, error) {
	if quantity < 1 {
		return Cart{}, model.ErrInvalidQuantity
	}

	next, err := s.store.Dispatch(ctx, "cart/quantity", func(st model.State) (model.State, error) {
		if !inCart(st.Orders.Cart, productID) {
			return st, model.ErrProductNotFound
		}
		st.Orders = state.UpdateCartQuantity(st.Orders, productID, quantity)
		return st, nil
	})
	if err != nil {
		return Cart{}, err
	}
	return cartOf(next), nil
}

// RemoveFromCart drops an existing cart line.
func (s *orderService) RemoveFromCart(ctx context.Context, productID string) (Cart, error) {
	next, err := s.store.Dispatch(ctx, "cart/remove", func(st model.State) (model.State, error) {
		if !inCart(st.Orders.Cart, productID) {
			return st, model.ErrProductNotFound
		}
		st.Orders = state.RemoveFromCart(st.Orders, productID)
		return st, nil
	})
	if err != nil {
		return Cart{}, err
	}
	return cartOf(next), nil
}

// ClearCart empties the cart.
func (s *orderService) ClearCart(ctx context.Context) (Cart, error) {
	next, err := s.store.Dispatch(ctx, "cart/clear", func(st model.State) (model.State, error) {
		st.Orders = state.ClearCart(st.Orders)
		return st, nil
	})
	if err != nil {
		return Cart{}, err
	}
	return cartOf(next), nil
}

// Checkout turns the cart into a PENDING order and empties the cart in one action.
func (s *orderService) Checkout(ctx context.Context, req model.CheckoutRequest) (*model.Order, error) {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return nil, model.ErrCustomerNameRequired
	}

	id, err := s.newID()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to generate order id")
		return nil, err
	}

	checkout := state.Checkout{ID: id, CustomerName: name, CreatedAt: s.now()}

	var order model.Order
	_, err = s.store.Dispatch(ctx, "orders/create", func(st model.State) (model.State, error) {
		var err error
		st.Orders, order, err = state.CreateOrder(st.Orders, checkout)
		return st, err
	})
	if err != nil {
		s.logger.Warn().Err(err).Msg("checkout rejected")
		return nil, err
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Int("item_count", len(order.Items)).
		Float64("total", order.Total).
		Msg("order created successfully")
	return &order, nil
}

// UpdateStatus moves an existing order to status.
func (s *orderService) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	next, err := s.store.Dispatch(ctx, "orders/status", func(st model.State) (model.State, error) {
		if _, ok := state.FindOrder(st.Orders.Items, id); !ok {
			return st, model.ErrOrderNotFound
		}
		var err error
		st.Orders, err = state.UpdateOrderStatus(st.Orders, id, status)
		return st, err
	})
	if err != nil {
		s.logger.Debug().Err(err).Str("order_id", id).Str("status", string(status)).Msg("status change rejected")
		return nil, err
	}

	o, _ := state.FindOrder(next.Orders.Items, id)
	s.logger.Info().Str("order_id", id).Str("status", string(o.Status)).Msg("order status updated")
	return &o, nil
}

func inCart(cart []model.CartItem, productID string) bool {
	for _, item := range cart {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}
