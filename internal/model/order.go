package model

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions leave s.
func (s OrderStatus) Terminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// CanTransition reports whether an order may move from s to next.
// Re-applying the current status is allowed and changes nothing.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if s == next {
		return true
	}
	return s == OrderPending && next.Terminal()
}

// CartItem is a pending line item of the single active cart.
// Price is the product price captured when the item was first added.
type CartItem struct {
	ProductID string  `json:"productId" yaml:"productId"`
	Name      string  `json:"name" yaml:"name"`
	Price     float64 `json:"price" yaml:"price"`
	Quantity  int     `json:"quantity" yaml:"quantity"`
}

// Subtotal returns price times quantity.
func (c CartItem) Subtotal() float64 {
	return c.Price * float64(c.Quantity)
}

// OrderItem is a frozen copy of a cart line taken at checkout.
type OrderItem = CartItem

// Order is an immutable snapshot of a completed checkout.
// Total is computed once at creation and never recomputed.
type Order struct {
	ID           string      `json:"id" yaml:"id"`
	CustomerName string      `json:"customerName" yaml:"customerName"`
	Items        []OrderItem `json:"items" yaml:"items"`
	Total        float64     `json:"total" yaml:"total"`
	Status       OrderStatus `json:"status" yaml:"status"`
	CreatedAt    time.Time   `json:"createdAt" yaml:"createdAt"`
}

// CartTotal sums price times quantity over items.
func CartTotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}

// CheckoutRequest represents the request payload for creating an order from the cart.
type CheckoutRequest struct {
	CustomerName string `json:"customerName"`
}

// AddToCartRequest represents the request payload for adding a product to the cart.
type AddToCartRequest struct {
	ProductID string `json:"productId"`
}

// CartQuantityRequest represents the request payload for setting a cart line quantity.
type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// OrderStatusRequest represents the request payload for an order status change.
type OrderStatusRequest struct {
	Status OrderStatus `json:"status"`
}
