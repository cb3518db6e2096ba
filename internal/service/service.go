package service

import (
	"context"
	"time"

	"admin-dashboard/internal/listing"
	"admin-dashboard/internal/metrics"
	"admin-dashboard/internal/model"
	"admin-dashboard/internal/store"
)

// Fetcher performs the one-shot fixture loads.
type Fetcher interface {
	Products(ctx context.Context) ([]model.Product, error)
	Orders(ctx context.Context) ([]model.Order, error)
}

// Store is the state container the services dispatch into.
type Store interface {
	Snapshot() model.State
	Dispatch(ctx context.Context, action string, fn store.Transition) (model.State, error)
	LoadProducts(ctx context.Context, fetch store.ProductFetcher) error
	LoadOrders(ctx context.Context, fetch store.OrderFetcher) error
}

// Clock returns the current time.
type Clock func() time.Time

var defaultClock Clock = time.Now

// ProductList is one page of the product list plus the load status.
type ProductList struct {
	listing.Page[model.Product]
	Loading bool    `json:"loading"`
	Error   *string `json:"error"`
}

// OrderList is one page of the order list plus the load status.
type OrderList struct {
	listing.Page[model.Order]
	Loading bool    `json:"loading"`
	Error   *string `json:"error"`
}

// Cart is the current cart with its derived total.
type Cart struct {
	Items     []model.CartItem `json:"items"`
	Total     float64          `json:"total"`
	ItemCount int              `json:"itemCount"`
}

// ProductService defines operations for product management.
type ProductService interface {
	// Load re-runs the product fixture load.
	Load(ctx context.Context) error

	// List returns one filtered, sorted page of visible products.
	List(ctx context.Context, q listing.ProductQuery) ProductList

	// Categories lists the categories of visible products.
	Categories(ctx context.Context) []string

	// GetByID retrieves a visible product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create validates in and adds a new ACTIVE product.
	Create(ctx context.Context, in model.ProductInput) (*model.Product, error)

	// Update replaces the editable fields of a product.
	Update(ctx context.Context, id string, in model.ProductInput) (*model.Product, error)

	// ToggleStatus flips a product between ACTIVE and INACTIVE.
	ToggleStatus(ctx context.Context, id string) (*model.Product, error)

	// Delete soft-deletes a product.
	Delete(ctx context.Context, id string) error
}

// OrderService defines operations for the cart and order lifecycle.
type OrderService interface {
	// Load re-runs the order fixture load. The cart is kept.
	Load(ctx context.Context) error

	// List returns one page of orders, newest first.
	List(ctx context.Context, q listing.OrderQuery) OrderList

	// GetByID retrieves an order by its ID.
	GetByID(ctx context.Context, id string) (*model.Order, error)

	// Cart returns the current cart.
	Cart(ctx context.Context) Cart

	// AddToCart adds one unit of a visible product.
	AddToCart(ctx context.Context, productID string) (Cart, error)

	// UpdateCartQuantity sets the quantity of a cart line.
	UpdateCartQuantity(ctx context.Context, productID string, quantity int) (Cart, error)

	// RemoveFromCart drops a cart line.
	RemoveFromCart(ctx context.Context, productID string) (Cart, error)

	// ClearCart empties the cart.
	ClearCart(ctx context.Context) (Cart, error)

	// Checkout turns the cart into a PENDING order.
	Checkout(ctx context.Context, req model.CheckoutRequest) (*model.Order, error)

	// UpdateStatus moves an order to a new status.
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
}

// DashboardService computes the dashboard metrics.
type DashboardService interface {
	// Summary derives every dashboard metric from the current snapshot.
	Summary(ctx context.Context) metrics.Summary
}

func cartOf(s model.State) Cart {
	count := 0
	for _, item := range s.Orders.Cart {
		count += item.Quantity
	}
	return Cart{
		Items:     s.Orders.Cart,
		Total:     model.CartTotal(s.Orders.Cart),
		ItemCount: count,
	}
}
