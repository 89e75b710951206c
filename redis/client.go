package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisClient is an implementation of the Cache interface. It delegates to
// the underlying go-redis client built by a Provider.
type RedisClient struct {
	client     Client
	defaultTTL time.Duration
}

// Build constructs a client for the given target, dispatching on its kind.
// Direct targets never touch the sentinel entry point of the provider, and
// sentinel targets never touch the direct one. A nil provider defaults to
// StandardProvider.
func Build(target *ConnectionTarget, opts *Options, provider Provider) (Client, error) {
	if provider == nil {
		provider = StandardProvider{}
	}
	if target.Kind != TargetSentinel {
		return provider.Direct(target.URL, opts)
	}

	sentinelProvider, ok := provider.(SentinelProvider)
	if !ok {
		return nil, ErrSentinelUnsupported
	}
	connector, err := sentinelProvider.Sentinel(target.Sentinel, opts)
	if err != nil {
		return nil, err
	}
	return connector.MasterFor(target.Sentinel.MasterName, target.Sentinel.DB)
}

// NewRedisClient resolves a connection URL and wraps the resulting client.
// It is the plain entry point for callers that do not go through a
// configuration registry.
func NewRedisClient(rawURL string, opts *Options) (*RedisClient, error) {
	target, err := ResolveURL(rawURL)
	if err != nil {
		return nil, err
	}
	client, err := Build(target, opts, nil)
	if err != nil {
		return nil, err
	}
	return Wrap(client, opts), nil
}

// Wrap adapts an already-built client into the Cache wrapper.
func Wrap(client Client, opts *Options) *RedisClient {
	rc := &RedisClient{client: client}
	if opts != nil {
		rc.defaultTTL = opts.DefaultTTL
	}
	return rc
}

// Unwrap exposes the underlying client for commands outside the Cache
// surface.
func (rc *RedisClient) Unwrap() Client {
	return rc.client
}

// Ping verifies the connection.
func (rc *RedisClient) Ping(ctx context.Context) error {
	if err := rc.client.Ping(ctx).Err(); err != nil {
		return WrapError("pinging server", "", err)
	}
	return nil
}

// Close releases the underlying client's resources.
func (rc *RedisClient) Close() error {
	return rc.client.Close()
}

// Get retrieves the value of a key from Redis.
func (rc *RedisClient) Get(ctx context.Context, key string) (string, error) {
	val, err := rc.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil // Key does not exist
	}
	if err != nil {
		return "", WrapError("GET", key, err)
	}
	return val, nil
}

// Set sets a value for a key in Redis with an optional expiration time.
func (rc *RedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if expiration == 0 {
		expiration = rc.defaultTTL
	}
	if err := rc.client.Set(ctx, key, value, expiration).Err(); err != nil {
		return WrapError("SET", key, err)
	}
	return nil
}

// ZRevRange retrieves elements from a sorted set in descending order.
func (rc *RedisClient) ZRevRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	vals, err := rc.client.ZRevRange(ctx, key, start, stop).Result()
	if err != nil {
		return nil, WrapError("ZRevRange", key, err)
	}
	return vals, nil
}

// ZAdd adds one or more members to a sorted set or updates their scores.
func (rc *RedisClient) ZAdd(ctx context.Context, key string, members ...*redis.Z) (int64, error) {
	n, err := rc.client.ZAdd(ctx, key, members...).Result()
	if err != nil {
		return 0, WrapError("ZADD", key, err)
	}
	return n, nil
}
