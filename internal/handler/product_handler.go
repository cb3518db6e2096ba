package handler

import (
	"net/http"

	"admin-dashboard/internal/listing"
	"admin-dashboard/internal/model"
	"admin-dashboard/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products requests.
// Query: search, status, category, sort (updatedAt|price), page, pageSize.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page, size, ok := pageParams(w, r, h.logger)
	if !ok {
		return
	}

	q := r.URL.Query()
	sortBy := q.Get("sort")
	if sortBy != "" && sortBy != listing.SortByPrice && sortBy != listing.SortByUpdatedAt {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidQuery, "invalid sort parameter", h.logger)
		return
	}

	list := h.service.List(r.Context(), listing.ProductQuery{
		Search:   q.Get("search"),
		Status:   q.Get("status"),
		Category: q.Get("category"),
		SortBy:   sortBy,
		Page:     page,
		PageSize: size,
	})
	writeJSON(w, http.StatusOK, list)
}

// Categories handles GET /api/products/categories requests.
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Categories(r.Context()))
}

// Load handles POST /api/products/load requests by re-running the fixture load.
func (h *ProductHandler) Load(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Load(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, model.FetchProductsFailed, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.service.List(r.Context(), listing.ProductQuery{}))
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// Create handles POST /api/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.ProductInput
	if !decodeJSON(w, r, &in, h.logger) {
		return
	}

	product, err := h.service.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

// Update handles PUT /api/products/{id} requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in model.ProductInput
	if !decodeJSON(w, r, &in, h.logger) {
		return
	}

	product, err := h.service.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// Toggle handles POST /api/products/{id}/toggle requests.
func (h *ProductHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.ToggleStatus(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /api/products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
