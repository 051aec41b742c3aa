package cmd_test

import (
	"testing"
	"time"

	"bakery/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"HTTP_PORT", "DB_HOST", "DB_NAME", "ORDER_QUEUE",
		"PROCESSING_DELAY", "COMPLETION_DELAY", "BACKEND_URL", "STATUS_POLL_SCHEDULE", "REDIS_URL", "PRODUCTS_CACHE_TTL",
	} {
		t.Setenv(key, "")
	}

	configs, err := cmd.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "5000", configs.HTTPPort)
	assert.Equal(t, "bakery", configs.DBName)
	assert.Equal(t, "order_queue", configs.OrderQueue)
	assert.Equal(t, 3*time.Second, configs.ProcessingDelay)
	assert.Equal(t, 2*time.Second, configs.CompletionDelay)
	assert.Equal(t, "http://localhost:5000", configs.BackendURL)
	assert.Equal(t, "*/2 * * * * *", configs.StatusPollSchedule)
	assert.Empty(t, configs.RedisURL)
	assert.Equal(t, 5*time.Minute, configs.ProductsCacheTTL)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("DB_HOST", "db")
	t.Setenv("PROCESSING_DELAY", "150ms")
	t.Setenv("ORDER_QUEUE", "orders")
	t.Setenv("REDIS_URL", "redis://cache:6379/0")
	t.Setenv("PRODUCTS_CACHE_TTL", "30s")

	configs, err := cmd.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", configs.HTTPPort)
	assert.Equal(t, "orders", configs.OrderQueue)
	assert.Equal(t, 150*time.Millisecond, configs.ProcessingDelay)
	assert.Contains(t, configs.DSN(), "host=db ")
	assert.Equal(t, "redis://cache:6379/0", configs.RedisURL)
	assert.Equal(t, 30*time.Second, configs.ProductsCacheTTL)
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	t.Setenv("COMPLETION_DELAY", "soon")

	_, err := cmd.LoadConfig()
	require.ErrorContains(t, err, "COMPLETION_DELAY")
}
