package ratelimit

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Redis is a sliding-window store backed by a Redis sorted set per key,
// for deployments where several instances must share limit state. Scores
// are attempt timestamps; pruning, insertion and counting run in one
// transactional pipeline so concurrent checkers observe a consistent window.
//
// The client should be obtained from pkg/redis.Open or pkg/redis.Connect.
type Redis struct {
	client redis.UniversalClient
	prefix string
}

// RedisOption configures the Redis store.
type RedisOption func(*Redis)

// WithPrefix sets the key prefix, namespacing limiter state away from other
// users of the same Redis database.
// Default: "ratelimit:".
func WithPrefix(prefix string) RedisOption {
	return func(r *Redis) {
		r.prefix = prefix
	}
}

// NewRedis creates a Redis-backed store.
//
// Example:
//
//	client, err := redis.Open(ctx, os.Getenv("REDIS_URL"))
//	store := ratelimit.NewRedis(client)
//	limiter, err := ratelimit.New(store)
func NewRedis(client redis.UniversalClient, opts ...RedisOption) *Redis {
	r := &Redis{
		client: client,
		prefix: "ratelimit:",
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Add records an attempt and returns the attempt count within the window
// and the oldest counted timestamp.
func (r *Redis) Add(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	k := r.prefix + key
	now := time.Now()
	cutoff := now.Add(-window).UnixMicro()

	// Each attempt gets a unique member so two attempts in the same
	// microsecond both count.
	member := uuid.NewString()

	pipe := r.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, k, "-inf", strconv.FormatInt(cutoff, 10))
	pipe.ZAdd(ctx, k, redis.Z{Score: float64(now.UnixMicro()), Member: member})
	countCmd := pipe.ZCard(ctx, k)
	oldestCmd := pipe.ZRangeWithScores(ctx, k, 0, 0)
	// Let Redis reclaim keys for clients that stop making requests.
	pipe.PExpire(ctx, k, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, err
	}

	oldest := now
	if zs := oldestCmd.Val(); len(zs) > 0 {
		oldest = time.UnixMicro(int64(zs[0].Score))
	}

	return int(countCmd.Val()), oldest, nil
}

// Close is a no-op: the Redis client is shared and owned by the caller.
func (r *Redis) Close() error {
	return nil
}

var _ Store = (*Redis)(nil)
