//go:build ignore

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"admin-dashboard/internal/model"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var categories = []string{"Electronics", "Home", "Books", "Sports", "Toys"}

var nouns = map[string][]string{
	"Electronics": {"Headphones", "Keyboard", "Monitor", "Webcam", "Speaker"},
	"Home":        {"Desk Lamp", "Kettle", "Blender", "Throw Pillow", "Wall Clock"},
	"Books":       {"Cookbook", "Novel", "Atlas", "Field Guide", "Anthology"},
	"Sports":      {"Yoga Mat", "Dumbbell", "Water Bottle", "Jump Rope", "Tennis Racket"},
	"Toys":        {"Puzzle", "Board Game", "Kite", "Building Blocks", "Plush Bear"},
}

var customers = []string{"Ada Lovelace", "Grace Hopper", "Alan Turing", "Edsger Dijkstra", "Barbara Liskov", "Ken Thompson"}

// Writes sample product and order fixtures.
//
//	go run scripts/generate_fixtures.go -out internal/fixture/data -products 24 -orders 8
func main() {
	out := flag.String("out", "internal/fixture/data", "output directory")
	productCount := flag.Int("products", 24, "number of products")
	orderCount := flag.Int("orders", 8, "number of orders")
	format := flag.String("format", "json", "json or yaml")
	seed := flag.Uint64("seed", 1, "random seed")
	flag.Parse()

	if *format != "json" && *format != "yaml" {
		log.Fatalf("Unknown format %q", *format)
	}

	rng := rand.New(rand.NewPCG(*seed, *seed))
	now := time.Now().UTC().Truncate(time.Second)

	products := make([]model.Product, *productCount)
	for i := range products {
		category := categories[i%len(categories)]
		names := nouns[category]
		status := model.ProductActive
		if rng.IntN(4) == 0 {
			status = model.ProductInactive
		}
		products[i] = model.Product{
			ID:        fmt.Sprintf("p%d", i+1),
			Name:      names[(i/len(categories))%len(names)],
			Price:     round2(5 + rng.Float64()*195),
			Stock:     rng.IntN(100),
			Category:  category,
			Rating:    round1(1 + rng.Float64()*4),
			Status:    status,
			UpdatedAt: now.Add(-time.Duration(rng.IntN(30*24)) * time.Hour),
		}
	}

	statuses := []model.OrderStatus{model.OrderPending, model.OrderCompleted, model.OrderCancelled}
	orders := make([]model.Order, *orderCount)
	for i := range orders {
		items := make([]model.OrderItem, 1+rng.IntN(3))
		for j := range items {
			p := products[rng.IntN(len(products))]
			items[j] = model.OrderItem{ProductID: p.ID, Name: p.Name, Price: p.Price, Quantity: 1 + rng.IntN(3)}
		}
		id, err := uuid.NewV7()
		if err != nil {
			log.Fatalf("Failed to generate order id: %v", err)
		}
		orders[i] = model.Order{
			ID:           "o_" + id.String(),
			CustomerName: customers[rng.IntN(len(customers))],
			Items:        items,
			Total:        round2(model.CartTotal(items)),
			Status:       statuses[rng.IntN(len(statuses))],
			CreatedAt:    now.Add(-time.Duration(i*18+rng.IntN(12)) * time.Hour),
		}
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	for name, v := range map[string]any{"products": products, "orders": orders} {
		path := filepath.Join(*out, name+"."+*format)
		if err := write(path, *format, v); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		fmt.Printf("Created %s\n", path)
	}

	fmt.Println("\nSample fixtures created successfully!")
}

func write(path, format string, v any) error {
	var data []byte
	var err error
	if format == "yaml" {
		data, err = yaml.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round1(v float64) float64 { return math.Round(v*10) / 10 }
