// Package store holds the single in-memory dashboard state. Every mutation
// goes through Dispatch: one action is one transition and one persistence
// write, applied in commit order.
package store

import (
	"context"
	"sync"
	"time"

	"admin-dashboard/internal/model"
	"admin-dashboard/internal/state"

	"github.com/rs/zerolog"
)

// Persister receives every committed snapshot. Implementations must not fail
// the caller.
type Persister interface {
	Save(ctx context.Context, s model.State)
}

// Transition maps the current snapshot to the next one. Returning an error
// discards the result and skips persistence.
type Transition func(s model.State) (model.State, error)

// ProductFetcher performs the one-shot product load.
type ProductFetcher func(ctx context.Context) ([]model.Product, error)

// OrderFetcher performs the one-shot order load.
type OrderFetcher func(ctx context.Context) ([]model.Order, error)

// Store serializes actions against the current snapshot.
type Store struct {
	mu        sync.Mutex
	current   model.State
	persister Persister
	logger    zerolog.Logger
}

// New creates a store starting from initial.
func New(initial model.State, persister Persister, logger zerolog.Logger) *Store {
	return &Store{
		current:   initial.Normalize(),
		persister: persister,
		logger:    logger.With().Str("component", "store").Logger(),
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() model.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// PersistTimeout bounds the snapshot write that follows each committed action.
const PersistTimeout = 5 * time.Second

// Dispatch applies fn to the current state. On success the new snapshot is
// committed and persisted before Dispatch returns it. The write runs on a
// context detached from ctx's cancellation.
func (s *Store) Dispatch(ctx context.Context, action string, fn Transition) (model.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.current.Clone())
	if err != nil {
		s.logger.Debug().Str("action", action).Err(err).Msg("action rejected")
		return s.current.Clone(), err
	}

	s.current = next
	if s.persister != nil {
		// A committed action is persisted even if the caller has gone away.
		saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), PersistTimeout)
		s.persister.Save(saveCtx, next)
		cancel()
	}

	s.logger.Debug().Str("action", action).Msg("action committed")
	return next.Clone(), nil
}

// LoadProducts marks products as loading, runs fetch outside the lock and
// then commits either the fetched items or the fetch failure. Concurrent
// loads resolve independently; the last one to finish wins.
func (s *Store) LoadProducts(ctx context.Context, fetch ProductFetcher) error {
	s.mustDispatch(ctx, "products/loading", func(st model.State) (model.State, error) {
		st.Products = state.ProductsLoading(st.Products)
		return st, nil
	})

	items, err := fetch(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("product load failed")
		s.mustDispatch(ctx, "products/failed", func(st model.State) (model.State, error) {
			st.Products = state.ProductsLoadFailed(st.Products)
			return st, nil
		})
		return err
	}

	s.mustDispatch(ctx, "products/loaded", func(st model.State) (model.State, error) {
		st.Products = state.ProductsLoaded(st.Products, items)
		return st, nil
	})
	s.logger.Info().Int("count", len(items)).Msg("products loaded")
	return nil
}

// LoadOrders is the order counterpart of LoadProducts. The cart is kept.
func (s *Store) LoadOrders(ctx context.Context, fetch OrderFetcher) error {
	s.mustDispatch(ctx, "orders/loading", func(st model.State) (model.State, error) {
		st.Orders = state.OrdersLoading(st.Orders)
		return st, nil
	})

	items, err := fetch(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("order load failed")
		s.mustDispatch(ctx, "orders/failed", func(st model.State) (model.State, error) {
			st.Orders = state.OrdersLoadFailed(st.Orders)
			return st, nil
		})
		return err
	}

	s.mustDispatch(ctx, "orders/loaded", func(st model.State) (model.State, error) {
		st.Orders = state.OrdersLoaded(st.Orders, items)
		return st, nil
	})
	s.logger.Info().Int("count", len(items)).Msg("orders loaded")
	return nil
}

func (s *Store) mustDispatch(ctx context.Context, action string, fn Transition) {
	// Load transitions never return an error.
	_, _ = s.Dispatch(ctx, action, fn)
}
