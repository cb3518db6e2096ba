package router

import (
	"net/http"

	"admin-dashboard/internal/handler"
	"admin-dashboard/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	dashboardHandler *handler.DashboardHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()
	handle := func(pattern, group string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, middleware.Route(group, h))
	}

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	handle("GET /api/dashboard", "dashboard", dashboardHandler.Summary)

	// Products
	handle("GET /api/products", "product", productHandler.List)
	handle("POST /api/products", "product", productHandler.Create)
	handle("GET /api/products/categories", "product", productHandler.Categories)
	handle("POST /api/products/load", "product", productHandler.Load)
	handle("GET /api/products/{id}", "product", productHandler.GetByID)
	handle("PUT /api/products/{id}", "product", productHandler.Update)
	handle("DELETE /api/products/{id}", "product", productHandler.Delete)
	handle("POST /api/products/{id}/toggle", "product", productHandler.Toggle)

	// Orders
	handle("GET /api/orders", "order", orderHandler.List)
	handle("POST /api/orders", "order", orderHandler.Create)
	handle("POST /api/orders/load", "order", orderHandler.Load)
	handle("GET /api/orders/{id}", "order", orderHandler.GetByID)
	handle("PATCH /api/orders/{id}/status", "order", orderHandler.UpdateStatus)

	// Cart
	handle("GET /api/cart", "cart", orderHandler.GetCart)
	handle("DELETE /api/cart", "cart", orderHandler.ClearCart)
	handle("POST /api/cart/items", "cart", orderHandler.AddCartItem)
	handle("PUT /api/cart/items/{productId}", "cart", orderHandler.UpdateCartItem)
	handle("DELETE /api/cart/items/{productId}", "cart", orderHandler.RemoveCartItem)

	// Apply middleware in order: Recovery -> Logging -> RequestID -> CORS
	var chain http.Handler = mux
	chain = middleware.CORS(chain)
	chain = middleware.RequestID(chain)
	chain = middleware.Logging(logger)(chain)
	chain = middleware.Recovery(logger)(chain)

	return chain
}
