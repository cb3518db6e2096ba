package service

import (
	"context"
	"fmt"

	"admin-dashboard/internal/listing"
	"admin-dashboard/internal/model"
	"admin-dashboard/internal/state"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	store    Store
	fetcher  Fetcher
	pageSize int
	now      Clock
	newID    IDGenerator
	logger   zerolog.Logger
}

// ProductOption customises a product service.
type ProductOption func(*productService)

// WithProductClock overrides the clock stamping updatedAt.
func WithProductClock(c Clock) ProductOption {
	return func(s *productService) { s.now = c }
}

// WithProductIDs overrides the product id generator.
func WithProductIDs(g IDGenerator) ProductOption {
	return func(s *productService) { s.newID = g }
}

// NewProductService creates a new product service.
func NewProductService(st Store, fetcher Fetcher, pageSize int, logger zerolog.Logger, opts ...ProductOption) ProductService {
	s := &productService{
		store:    st,
		fetcher:  fetcher,
		pageSize: pageSize,
		now:      defaultClock,
		newID:    NewProductID,
		logger:   logger.With().Str("service", "product").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load re-runs the product fixture load.
func (s *productService) Load(ctx context.Context) error {
	if err := s.store.LoadProducts(ctx, s.fetcher.Products); err != nil {
		s.logger.Error().Err(err).Msg("failed to load products")
		return fmt.Errorf("failed to load products: %w", err)
	}
	return nil
}

// List returns one filtered, sorted page of visible products.
func (s *productService) List(ctx context.Context, q listing.ProductQuery) ProductList {
	if q.PageSize <= 0 {
		q.PageSize = s.pageSize
	}
	if q.Page == 0 {
		q.Page = 1
	}

	snap := s.store.Snapshot()
	filtered := listing.FilterProducts(snap.Products.Items, q)
	page := listing.Paginate(filtered, q.Page, q.PageSize)

	s.logger.Debug().
		Str("search", q.Search).
		Int("matched", page.TotalItems).
		Int("page", page.Page).
		Msg("listed products")

	return ProductList{
		Page:    page,
		Loading: snap.Products.Loading,
		Error:   snap.Products.Error,
	}
}

// Categories lists the categories of visible products.
func (s *productService) Categories(ctx context.Context) []string {
	return listing.Categories(s.store.Snapshot().Products.Items)
}

// GetByID retrieves a product by ID. Soft-deleted products are returned
// with IsDeleted set.
func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	p, ok := state.FindProduct(s.store.Snapshot().Products.Items, id)
	if !ok {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}
	return &p, nil
}

// Create validates in and adds a new product.
func (s *productService) Create(ctx context.Context, in model.ProductInput) (*model.Product, error) {
	if err := in.Validate(); err != nil {
		s.logger.Warn().Err(err).Str("name", in.Name).Msg("invalid product")
		return nil, err
	}

	id, err := s.newID()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to generate product id")
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = model.ProductActive
	}

	p := model.Product{
		ID:        id,
		Name:      in.Name,
		Price:     in.Price,
		Stock:     in.Stock,
		Category:  in.Category,
		Rating:    in.Rating,
		Status:    status,
		UpdatedAt: s.now(),
	}

	_, err = s.store.Dispatch(ctx, "products/add", func(st model.State) (model.State, error) {
		var err error
		st.Products, err = state.AddProduct(st.Products, p)
		return st, err
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("product_id", id).Msg("failed to add product")
		return nil, err
	}

	s.logger.Info().Str("product_id", id).Str("name", p.Name).Msg("product created")
	return &p, nil
}

// Update replaces the editable fields of a visible product.
func (s *productService) Update(ctx context.Context, id string, in model.ProductInput) (*model.Product, error) {
	if err := in.Validate(); err != nil {
		s.logger.Warn().Err(err).Str("product_id", id).Msg("invalid product update")
		return nil, err
	}

	var updated model.Product
	_, err := s.store.Dispatch(ctx, "products/update", func(st model.State) (model.State, error) {
		current, ok := state.FindProduct(st.Products.Items, id)
		if !ok || !current.Visible() {
			return st, model.ErrProductNotFound
		}
		updated = current
		updated.Name = in.Name
		updated.Price = in.Price
		updated.Stock = in.Stock
		updated.Category = in.Category
		updated.Rating = in.Rating
		if in.Status != "" {
			updated.Status = in.Status
		}
		updated.UpdatedAt = s.now()
		st.Products = state.UpdateProduct(st.Products, updated)
		return st, nil
	})
	if err != nil {
		s.logger.Debug().Err(err).Str("product_id", id).Msg("product update rejected")
		return nil, err
	}

	s.logger.Info().Str("product_id", id).Msg("product updated")
	return &updated, nil
}

// ToggleStatus flips a visible product between ACTIVE and INACTIVE.
func (s *productService) ToggleStatus(ctx context.Context, id string) (*model.Product, error) {
	next, err := s.store.Dispatch(ctx, "products/toggle", func(st model.State) (model.State, error) {
		current, ok := state.FindProduct(st.Products.Items, id)
		if !ok || !current.Visible() {
			return st, model.ErrProductNotFound
		}
		st.Products = state.ToggleProductStatus(st.Products, id)
		return st, nil
	})
	if err != nil {
		return nil, err
	}

	p, _ := state.FindProduct(next.Products.Items, id)
	s.logger.Info().Str("product_id", id).Str("status", string(p.Status)).Msg("product status toggled")
	return &p, nil
}

// Delete soft-deletes a product. Deleting an already deleted product succeeds
// and changes nothing.
func (s *productService) Delete(ctx context.Context, id string) error {
	_, err := s.store.Dispatch(ctx, "products/delete", func(st model.State) (model.State, error) {
		if _, ok := state.FindProduct(st.Products.Items, id); !ok {
			return st, model.ErrProductNotFound
		}
		st.Products = state.SoftDeleteProduct(st.Products, id)
		return st, nil
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("product_id", id).Msg("product soft-deleted")
	return nil
}
