package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"admin-dashboard/internal/fixture"
	"admin-dashboard/internal/handler"
	"admin-dashboard/internal/listing"
	"admin-dashboard/internal/persist"
	"admin-dashboard/internal/router"
	"admin-dashboard/internal/service"
	"admin-dashboard/internal/store"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// CleanupDB removes every persisted snapshot.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), "DELETE FROM app_state"); err != nil {
		t.Logf("failed to clean app_state: %v", err)
	}
}

// App is one boot of the dashboard against a shared database.
type App struct {
	Handler  http.Handler
	Store    *store.Store
	Restored bool
}

// BootApp wires the full stack the way cmd/api does, over the embedded
// fixtures with no simulated latency and a Postgres state slot.
func BootApp(t *testing.T, testDB *TestDB) *App {
	t.Helper()

	logger := zerolog.Nop()
	ctx := context.Background()

	slot, err := persist.NewPostgresSlot(ctx, testDB.Pool, persist.DefaultKey, logger)
	if err != nil {
		t.Fatalf("failed to create postgres slot: %v", err)
	}
	bridge := persist.NewBridge(slot, logger)

	config := fixture.DefaultSourceConfig()
	config.Latency = fixture.NoLatency()
	source := fixture.NewSource(fixture.NewEmbeddedReader(logger), config, logger)

	initial, restored := store.Initial(ctx, bridge)
	st := store.New(initial, bridge, logger)
	if !restored {
		if err := st.LoadAll(ctx, source.Products, source.Orders); err != nil {
			t.Fatalf("failed to load fixtures: %v", err)
		}
	}

	productService := service.NewProductService(st, source, listing.DefaultPageSize, logger)
	orderService := service.NewOrderService(st, source, listing.DefaultPageSize, logger)
	dashboardService := service.NewDashboardService(st, time.UTC, nil, logger)

	return &App{
		Handler: router.New(
			handler.NewProductHandler(productService, logger),
			handler.NewOrderHandler(orderService, logger),
			handler.NewDashboardHandler(dashboardService, logger),
			logger,
		),
		Store:    st,
		Restored: restored,
	}
}
