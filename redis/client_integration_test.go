package redis

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedisContainer(t *testing.T) (testcontainers.Container, string) {
	t.Helper() // Mark as a helper function for better error reporting
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:latest",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("Failed to start Redis container: %v", err)
	}

	ip, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get Redis container host: %v", err)
	}

	port, err := container.MappedPort(ctx, "6379")
	if err != nil {
		t.Fatalf("Failed to get Redis container port: %v", err)
	}

	return container, "redis://" + ip + ":" + port.Port() + "/0"
}

func setupTest(t *testing.T) (testcontainers.Container, *RedisClient, *Registry) {
	container, redisURL := setupRedisContainer(t)

	cfg := viper.New()
	cfg.Set("REDIS_URL", redisURL)
	registry := NewRegistry()

	connector := NewConnector(WithOptions(&Options{
		PoolSize:     10,
		MinIdleConns: 2,
		DefaultTTL:   5 * time.Minute,
	}))

	client, err := connector.InitFromConfig(context.Background(), cfg, registry)
	if err != nil {
		container.Terminate(context.Background())
		t.Fatalf("Failed to initialize Redis client: %v", err)
	}

	return container, client, registry
}

func teardownTest(container testcontainers.Container) {
	container.Terminate(context.Background())
}

func TestRedisIntegration(t *testing.T) {
	container, client, registry := setupTest(t)
	defer teardownTest(container)

	ctx := context.Background()

	t.Run("TestRegistered", func(t *testing.T) {
		registered, ok := registry.Lookup("redis")
		require.True(t, ok)
		assert.Same(t, client, registered)
	})

	t.Run("TestGetSet", func(t *testing.T) {
		key := "test_key"
		value := "test_value"

		err := client.Set(ctx, key, value, 30*time.Second)
		require.NoError(t, err)

		got, err := client.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, value, got)
	})

	t.Run("TestDefaultTTL", func(t *testing.T) {
		err := client.Set(ctx, "ttl_key", "v", 0)
		require.NoError(t, err)

		ttl, err := client.TTL(ctx, "ttl_key")
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
		assert.LessOrEqual(t, ttl, 5*time.Minute)
	})

	t.Run("TestExpire", func(t *testing.T) {
		require.NoError(t, client.Set(ctx, "expire_key", "v", 0))

		ok, err := client.Expire(ctx, "expire_key", time.Second)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("TestKeys", func(t *testing.T) {
		require.NoError(t, client.Set(ctx, "match:1", "a", 0))
		require.NoError(t, client.Set(ctx, "match:2", "b", 0))

		keys, err := client.Keys(ctx, "match:*")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"match:1", "match:2"}, keys)
	})

	t.Run("TestFlushDB", func(t *testing.T) {
		require.NoError(t, client.Set(ctx, "flushed", "v", 0))
		require.NoError(t, client.FlushDB(ctx))

		exists, err := client.Exists(ctx, "flushed")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
