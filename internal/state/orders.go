package state

import (
	"time"

	"admin-dashboard/internal/model"
)

// OrdersLoading marks a fixture load as in flight and clears the error.
func OrdersLoading(s model.OrdersState) model.OrdersState {
	s = shallowCopy(s)
	s.Loading = true
	s.Error = nil
	return s
}

// OrdersLoaded replaces the order collection wholesale. The cart is kept.
func OrdersLoaded(s model.OrdersState, items []model.Order) model.OrdersState {
	s = shallowCopy(s)
	s.Items = make([]model.Order, len(items))
	copy(s.Items, items)
	s.Loading = false
	return s
}

// OrdersLoadFailed records the fixed fetch failure message; items are left untouched.
func OrdersLoadFailed(s model.OrdersState) model.OrdersState {
	msg := model.FetchOrdersFailed
	s = shallowCopy(s)
	s.Loading = false
	s.Error = &msg
	return s
}

// AddToCart increments the line for productID or appends a new line with quantity 1.
// The name and price captured by the first add are kept.
func AddToCart(s model.OrdersState, productID, name string, price float64) model.OrdersState {
	s = shallowCopy(s)
	if i := indexCart(s.Cart, productID); i >= 0 {
		s.Cart[i].Quantity++
		return s
	}
	s.Cart = append(s.Cart, model.CartItem{
		ProductID: productID,
		Name:      name,
		Price:     price,
		Quantity:  1,
	})
	return s
}

// UpdateCartQuantity sets the quantity of the line for productID, clamped to at least 1.
// Unknown product ids are a no-op.
func UpdateCartQuantity(s model.OrdersState, productID string, quantity int) model.OrdersState {
	i := indexCart(s.Cart, productID)
	if i < 0 {
		return s
	}
	s = shallowCopy(s)
	s.Cart[i].Quantity = max(quantity, 1)
	return s
}

// RemoveFromCart drops the line for productID.
func RemoveFromCart(s model.OrdersState, productID string) model.OrdersState {
	i := indexCart(s.Cart, productID)
	if i < 0 {
		return s
	}
	s = shallowCopy(s)
	s.Cart = append(s.Cart[:i], s.Cart[i+1:]...)
	return s
}

// ClearCart empties the cart.
func ClearCart(s model.OrdersState) model.OrdersState {
	s = shallowCopy(s)
	s.Cart = []model.CartItem{}
	return s
}

// Checkout carries the caller-assigned identity of a new order.
type Checkout struct {
	ID           string
	CustomerName string
	CreatedAt    time.Time
}

// CreateOrder mints a PENDING order from the cart, puts it at the front of the
// order list and empties the cart in the same returned snapshot.
func CreateOrder(s model.OrdersState, c Checkout) (model.OrdersState, model.Order, error) {
	if len(s.Cart) == 0 {
		return s, model.Order{}, model.ErrEmptyCart
	}

	items := make([]model.OrderItem, len(s.Cart))
	copy(items, s.Cart)

	order := model.Order{
		ID:           c.ID,
		CustomerName: c.CustomerName,
		Items:        items,
		Total:        model.CartTotal(items),
		Status:       model.OrderPending,
		CreatedAt:    c.CreatedAt,
	}

	orders := make([]model.Order, 0, len(s.Items)+1)
	orders = append(orders, order)
	orders = append(orders, s.Items...)

	s.Items = orders
	s.Cart = []model.CartItem{}
	return s, order, nil
}

// UpdateOrderStatus moves the order with id to status. Only PENDING orders may
// move, and only to a terminal status; re-applying the current status is a
// no-op. Unknown ids are a no-op.
func UpdateOrderStatus(s model.OrdersState, id string, status model.OrderStatus) (model.OrdersState, error) {
	if !status.Valid() {
		return s, model.ErrInvalidStatus
	}
	i := indexOrder(s.Items, id)
	if i < 0 {
		return s, nil
	}
	current := s.Items[i].Status
	if !current.CanTransition(status) {
		return s, model.ErrInvalidTransition
	}
	if current == status {
		return s, nil
	}
	orders := make([]model.Order, len(s.Items))
	copy(orders, s.Items)
	orders[i].Status = status
	s.Items = orders
	return s, nil
}

// FindOrder returns the order with id.
func FindOrder(items []model.Order, id string) (model.Order, bool) {
	i := indexOrder(items, id)
	if i < 0 {
		return model.Order{}, false
	}
	return items[i], true
}

func indexCart(cart []model.CartItem, productID string) int {
	for i := range cart {
		if cart[i].ProductID == productID {
			return i
		}
	}
	return -1
}

func indexOrder(items []model.Order, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

// shallowCopy detaches the cart slice; orders are value-copied only when changed.
func shallowCopy(s model.OrdersState) model.OrdersState {
	cart := make([]model.CartItem, len(s.Cart))
	copy(cart, s.Cart)
	s.Cart = cart
	return s
}
