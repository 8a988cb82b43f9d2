// Package rediscache stores memoized recommendation lists in Redis.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/okian/sportfit/internal/domain/memo"
	"github.com/okian/sportfit/internal/domain/types"
	"github.com/okian/sportfit/pkg/logger"
)

const (
	defaultTTL = time.Hour
	scanCount  = 500
)

// Cache implements memo.Cache with JSON values and a fixed TTL. Backend
// failures are logged and reported as misses.
type Cache struct {
	rdb    redis.UniversalClient
	ttl    time.Duration
	prefix string
	logger logger.Logger
}

var _ memo.Cache = (*Cache)(nil)

// Option applies a configuration option to the Cache.
type Option func(*Cache)

// WithTTL sets the entry lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithPrefix namespaces every key.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// WithLogger sets the cache logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.logger = l
		}
	}
}

// New wraps an existing client.
func New(rdb redis.UniversalClient, opts ...Option) *Cache {
	c := &Cache{
		rdb:    rdb,
		ttl:    defaultTTL,
		prefix: "sportfit:rec:",
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dial connects to addr and verifies the connection.
func Dial(ctx context.Context, addr, password string, db int, opts ...Option) (*Cache, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return New(rdb, opts...), nil
}

func (c *Cache) Get(ctx context.Context, key string) ([]types.Recommendation, bool) {
	b, err := c.rdb.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.logger.Warn(ctx, "redis cache get failed", logger.String("key", key), logger.Error(err))
		return nil, false
	}
	var recs []types.Recommendation
	if err := json.Unmarshal(b, &recs); err != nil {
		c.logger.Warn(ctx, "redis cache entry corrupt", logger.String("key", key), logger.Error(err))
		return nil, false
	}
	return recs, true
}

func (c *Cache) Put(ctx context.Context, key string, recs []types.Recommendation) {
	b, err := json.Marshal(recs)
	if err != nil {
		c.logger.Warn(ctx, "redis cache encode failed", logger.String("key", key), logger.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, c.prefix+key, b, c.ttl).Err(); err != nil {
		c.logger.Warn(ctx, "redis cache put failed", logger.String("key", key), logger.Error(err))
	}
}

// Size counts the keys under the cache prefix, or returns -1 when Redis
// cannot be reached. It walks the keyspace with SCAN, so other data in the
// same database is not counted.
func (c *Cache) Size() int64 {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	var n int64
	iter := c.rdb.Scan(ctx, 0, globEscape(c.prefix)+"*", scanCount).Iterator()
	for iter.Next(ctx) {
		n++
	}
	if err := iter.Err(); err != nil {
		return -1
	}
	return n
}

// globEscape quotes the characters SCAN MATCH treats as patterns.
func globEscape(s string) string {
	return globReplacer.Replace(s)
}

var globReplacer = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

// Ping checks connectivity.
func (c *Cache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close releases the client.
func (c *Cache) Close() error {
	return c.rdb.Close()
}
