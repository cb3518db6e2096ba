package fixture

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"admin-dashboard/internal/model"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Reader defines the interface for reading a raw fixture document.
type Reader interface {
	// Read returns the bytes of the named fixture.
	Read(ctx context.Context, name string) ([]byte, error)
}

// SourceConfig holds configuration for the fixture source.
type SourceConfig struct {
	// ProductsName is the fixture holding the product collection.
	ProductsName string

	// OrdersName is the fixture holding the order collection.
	OrdersName string

	// Latency is the simulated round trip added to every fetch.
	Latency Latency
}

// DefaultSourceConfig returns the default fixture source configuration.
func DefaultSourceConfig() SourceConfig {
	return SourceConfig{
		ProductsName: "products.json",
		OrdersName:   "orders.json",
		Latency:      DefaultLatency(),
	}
}

// Source simulates the remote catalogue API on top of static fixtures.
type Source struct {
	reader Reader
	config SourceConfig
	logger zerolog.Logger
}

// NewSource creates a fixture source reading through reader.
func NewSource(reader Reader, config SourceConfig, logger zerolog.Logger) *Source {
	return &Source{
		reader: reader,
		config: config,
		logger: logger.With().Str("component", "fixture-source").Logger(),
	}
}

// Products fetches the product fixture after the simulated latency.
func (s *Source) Products(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := s.fetch(ctx, s.config.ProductsName, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []model.Product{}
	}

	s.logger.Debug().Int("count", len(products)).Msg("products fetched")
	return products, nil
}

// Orders fetches the order fixture after the simulated latency.
func (s *Source) Orders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := s.fetch(ctx, s.config.OrdersName, &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []model.Order{}
	}
	for i := range orders {
		if orders[i].Items == nil {
			orders[i].Items = []model.OrderItem{}
		}
	}

	s.logger.Debug().Int("count", len(orders)).Msg("orders fetched")
	return orders, nil
}

func (s *Source) fetch(ctx context.Context, name string, out any) error {
	if err := s.config.Latency.Wait(ctx); err != nil {
		s.logger.Warn().Str("fixture", name).Msg("fixture fetch cancelled")
		return err
	}

	data, err := s.reader.Read(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to read fixture %s: %w", name, err)
	}

	if err := Decode(name, data, out); err != nil {
		s.logger.Error().Err(err).Str("fixture", name).Msg("failed to decode fixture")
		return err
	}
	return nil
}

// Decode unmarshals data as YAML when name ends in .yaml or .yml and as JSON otherwise.
func Decode(name string, data []byte, out any) error {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode YAML fixture %s: %w", name, err)
		}
	default:
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode JSON fixture %s: %w", name, err)
		}
	}
	return nil
}
