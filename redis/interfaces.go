package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client is the minimal capability the kit needs from go-redis. Both the
// standalone client and the failover client built through sentinel satisfy
// it, and test doubles can embed redis.Cmdable instead of implementing the
// full command surface.
type Client interface {
	redis.Cmdable
	Close() error
}

// Cache defines the operations exposed by the RedisClient wrapper. Callers
// needing commands outside this set can drop down to the raw client via
// Unwrap.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, keys ...string) (int64, error)
	Expire(ctx context.Context, key string, expiration time.Duration) (bool, error)
	TTL(ctx context.Context, key string) (time.Duration, error)
	Increment(ctx context.Context, key string, amount int64) (int64, error)
	Decrement(ctx context.Context, key string, amount int64) (int64, error)
	Keys(ctx context.Context, pattern string) ([]string, error)
	FlushDB(ctx context.Context) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HSetMap(ctx context.Context, key string, fields map[string]interface{}) (int64, error)
	ZRevRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	ZAdd(ctx context.Context, key string, members ...*redis.Z) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}
