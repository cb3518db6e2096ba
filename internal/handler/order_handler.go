package handler

import (
	"net/http"

	"admin-dashboard/internal/listing"
	"admin-dashboard/internal/model"
	"admin-dashboard/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles order and cart HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// List handles GET /api/orders requests. Query: status, page, pageSize.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	page, size, ok := pageParams(w, r, h.logger)
	if !ok {
		return
	}
	list := h.service.List(r.Context(), listing.OrderQuery{
		Status:   r.URL.Query().Get("status"),
		Page:     page,
		PageSize: size,
	})
	writeJSON(w, http.StatusOK, list)
}

// Load handles POST /api/orders/load requests by re-running the fixture load.
func (h *OrderHandler) Load(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Load(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, model.FetchOrdersFailed, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.service.List(r.Context(), listing.OrderQuery{}))
}

// Create handles POST /api/orders requests by checking out the cart.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CheckoutRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	order, err := h.service.Checkout(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

// GetByID handles GET /api/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// UpdateStatus handles PATCH /api/orders/{id}/status requests.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req model.OrderStatusRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// GetCart handles GET /api/cart requests.
func (h *OrderHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Cart(r.Context()))
}

// ClearCart handles DELETE /api/cart requests.
func (h *OrderHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.ClearCart(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

// AddCartItem handles POST /api/cart/items requests.
func (h *OrderHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req model.AddToCartRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	cart, err := h.service.AddToCart(r.Context(), req.ProductID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

// UpdateCartItem handles PUT /api/cart/items/{productId} requests.
func (h *OrderHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req model.CartQuantityRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	cart, err := h.service.UpdateCartQuantity(r.Context(), r.PathValue("productId"), req.Quantity)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

// RemoveCartItem handles DELETE /api/cart/items/{productId} requests.
func (h *OrderHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.RemoveFromCart(r.Context(), r.PathValue("productId"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}
