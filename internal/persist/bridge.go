package persist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"admin-dashboard/internal/model"

	"github.com/rs/zerolog"
)

// Bridge serializes state snapshots into a slot and restores them on boot.
// Failures never reach the caller; they are logged and dropped.
type Bridge struct {
	slot   Slot
	logger zerolog.Logger
}

// NewBridge creates a persistence bridge over slot.
func NewBridge(slot Slot, logger zerolog.Logger) *Bridge {
	return &Bridge{
		slot:   slot,
		logger: logger.With().Str("component", "persist-bridge").Logger(),
	}
}

// Save writes s to the slot, replacing the previous snapshot.
func (b *Bridge) Save(ctx context.Context, s model.State) {
	data, err := Encode(s)
	if err != nil {
		b.logger.Warn().Err(err).Msg("failed to encode state snapshot")
		return
	}
	if err := b.slot.Put(ctx, data); err != nil {
		b.logger.Warn().Err(err).Msg("failed to persist state snapshot")
		return
	}
	b.logger.Debug().Int("bytes", len(data)).Msg("state snapshot persisted")
}

// Load reads the preloaded state. ok is false when the slot is empty or its
// contents cannot be parsed; the caller then starts from the defaults.
func (b *Bridge) Load(ctx context.Context) (model.State, bool) {
	data, err := b.slot.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrSlotEmpty) {
			b.logger.Info().Msg("no persisted state found")
		} else {
			b.logger.Warn().Err(err).Msg("failed to read persisted state")
		}
		return model.State{}, false
	}

	s, err := Decode(data)
	if err != nil {
		b.logger.Warn().Err(err).Msg("discarding unparseable persisted state")
		return model.State{}, false
	}

	b.logger.Info().
		Int("products", len(s.Products.Items)).
		Int("orders", len(s.Orders.Items)).
		Int("cart_items", len(s.Orders.Cart)).
		Msg("persisted state restored")
	return s, true
}

// Encode renders s in the persisted layout {products, orders}.
func Encode(s model.State) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode state: %w", err)
	}
	return data, nil
}

// Decode parses a persisted snapshot. Missing collections become empty and
// loading/error always come back cleared.
func Decode(data []byte) (model.State, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return model.State{}, fmt.Errorf("failed to decode state: payload is not a JSON object")
	}
	var s model.State
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return model.State{}, fmt.Errorf("failed to decode state: %w", err)
	}
	return s.Normalize(), nil
}
