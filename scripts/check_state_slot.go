//go:build ignore

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"admin-dashboard/internal/config"
	"admin-dashboard/internal/persist"
)

// Opens the configured state slot and reports what it holds.
//
//	STORAGE_BACKEND=redis go run scripts/check_state_slot.go
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := config.NewLogger(cfg.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	slot, err := persist.Open(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to open %s slot: %v\n", cfg.Storage.Backend, err)
		os.Exit(1)
	}
	defer slot.Close()

	data, err := slot.Get(ctx)
	if errors.Is(err, persist.ErrSlotEmpty) {
		fmt.Printf("Connected to %s slot %q: no snapshot stored yet\n", cfg.Storage.Backend, cfg.Storage.Key)
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Read failed: %v\n", err)
		os.Exit(1)
	}

	s, err := persist.Decode(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Snapshot is not parseable (%d bytes): %v\n", len(data), err)
		os.Exit(1)
	}

	fmt.Printf("Connected to %s slot %q\n", cfg.Storage.Backend, cfg.Storage.Key)
	fmt.Printf("  products:   %d\n", len(s.Products.Items))
	fmt.Printf("  orders:     %d\n", len(s.Orders.Items))
	fmt.Printf("  cart lines: %d\n", len(s.Orders.Cart))
}
