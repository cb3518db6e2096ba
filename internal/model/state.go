package model

// ProductsState is the full product store snapshot.
type ProductsState struct {
	Items   []Product `json:"items"`
	Loading bool      `json:"loading"`
	Error   *string   `json:"error"`
}

// OrdersState is the full order/cart store snapshot. Items are newest first.
type OrdersState struct {
	Items   []Order    `json:"items"`
	Cart    []CartItem `json:"cart"`
	Loading bool       `json:"loading"`
	Error   *string    `json:"error"`
}

// State is the persisted application snapshot.
type State struct {
	Products ProductsState `json:"products"`
	Orders   OrdersState   `json:"orders"`
}

// NewState returns the empty default state with non-nil collections.
func NewState() State {
	return State{
		Products: ProductsState{Items: []Product{}},
		Orders:   OrdersState{Items: []Order{}, Cart: []CartItem{}},
	}
}

// Normalize replaces missing collections with empty ones and resets the
// transient loading and error fields.
func (s State) Normalize() State {
	if s.Products.Items == nil {
		s.Products.Items = []Product{}
	}
	if s.Orders.Items == nil {
		s.Orders.Items = []Order{}
	}
	if s.Orders.Cart == nil {
		s.Orders.Cart = []CartItem{}
	}
	for i := range s.Orders.Items {
		if s.Orders.Items[i].Items == nil {
			s.Orders.Items[i].Items = []OrderItem{}
		}
	}
	s.Products.Loading = false
	s.Products.Error = nil
	s.Orders.Loading = false
	s.Orders.Error = nil
	return s
}

// Clone returns a deep copy so snapshots handed out never alias live state.
func (s State) Clone() State {
	out := State{
		Products: ProductsState{
			Items:   append([]Product(nil), s.Products.Items...),
			Loading: s.Products.Loading,
			Error:   cloneString(s.Products.Error),
		},
		Orders: OrdersState{
			Items:   make([]Order, len(s.Orders.Items)),
			Cart:    append([]CartItem(nil), s.Orders.Cart...),
			Loading: s.Orders.Loading,
			Error:   cloneString(s.Orders.Error),
		},
	}
	for i, o := range s.Orders.Items {
		o.Items = append([]OrderItem{}, o.Items...)
		out.Orders.Items[i] = o
	}
	if out.Products.Items == nil {
		out.Products.Items = []Product{}
	}
	if out.Orders.Cart == nil {
		out.Orders.Cart = []CartItem{}
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
