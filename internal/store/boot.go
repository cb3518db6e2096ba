package store

import (
	"context"

	"admin-dashboard/internal/model"

	"golang.org/x/sync/errgroup"
)

// Preloader restores a previously persisted snapshot.
type Preloader interface {
	Load(ctx context.Context) (model.State, bool)
}

// Initial returns the preloaded state when one exists, otherwise the empty
// default. ok reports whether a snapshot was restored.
func Initial(ctx context.Context, p Preloader) (model.State, bool) {
	if p == nil {
		return model.NewState(), false
	}
	s, ok := p.Load(ctx)
	if !ok {
		return model.NewState(), false
	}
	return s, true
}

// LoadAll runs the product and order loads concurrently. Both loads always run
// to completion; the first error is returned.
func (s *Store) LoadAll(ctx context.Context, products ProductFetcher, orders OrderFetcher) error {
	var g errgroup.Group
	g.Go(func() error { return s.LoadProducts(ctx, products) })
	g.Go(func() error { return s.LoadOrders(ctx, orders) })
	return g.Wait()
}
