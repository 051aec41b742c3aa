// Package testutil starts throwaway infrastructure containers for
// integration tests.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	postgresadapter "bakery/internal/adapters/out/postgres"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Seeded product identifiers, see the 000002 migration.
const (
	CroissantID = "6f0c3c4e-7a53-4f73-9a3a-2b1d1f0e6a01"
	BaguetteID  = "6f0c3c4e-7a53-4f73-9a3a-2b1d1f0e6a02"
)

// StartPostgres launches a PostgreSQL container, applies all migrations and
// returns a GORM connection and the DSN it was opened with. The container is
// terminated by t.Cleanup.
func StartPostgres(t *testing.T) (*gorm.DB, string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, postgresadapter.RunMigrations(dsn, logger))

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	return db, dsn
}

// ResetOrders removes all orders, keeping the seeded catalog.
func ResetOrders(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Exec("TRUNCATE TABLE order_items, orders").Error)
}
