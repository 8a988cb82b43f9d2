// Package memo defines the interface for memoizing recommendation lists.
package memo

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/okian/sportfit/internal/domain/types"
)

// Cache stores ranked recommendation lists by request key.
type Cache interface {
	// Get returns the list stored under key. A miss, an expired entry and a
	// backend failure all report false.
	Get(ctx context.Context, key string) ([]types.Recommendation, bool)

	// Put stores recs under key, replacing any previous value.
	Put(ctx context.Context, key string, recs []types.Recommendation)

	Size() int64
}

// node is one entry of the recency list.
type node struct {
	key  string
	recs []types.Recommendation
	prev *node
	next *node
}

func (n *node) reset() {
	n.key = ""
	n.recs = nil
	n.prev = nil
	n.next = nil
}

// inMemoryCache keeps entries in insertion order and evicts the oldest when
// full. maxSize <= 0 means unbounded.
type inMemoryCache struct {
	mu       sync.Mutex
	entries  map[string]*node
	head     *node // newest
	tail     *node // oldest
	maxSize  int
	size     atomic.Int64
	nodePool sync.Pool
}

// NewInMemoryCache creates a bounded in-memory cache.
func NewInMemoryCache(opts ...Option) Cache {
	c := &inMemoryCache{
		maxSize: 10000,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.entries = make(map[string]*node)
	c.nodePool = sync.Pool{
		New: func() interface{} {
			return &node{}
		},
	}
	return c
}

func (c *inMemoryCache) Get(_ context.Context, key string) ([]types.Recommendation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return clone(n.recs), true
}

func (c *inMemoryCache) Put(_ context.Context, key string, recs []types.Recommendation) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.entries[key]; ok {
		n.recs = clone(recs)
		return
	}
	if c.maxSize > 0 && len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	n := c.nodePool.Get().(*node)
	n.key = key
	n.recs = clone(recs)
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
	c.entries[key] = n
	c.size.Add(1)
}

// evictOldest drops the tail. Must be called with c.mu held.
func (c *inMemoryCache) evictOldest() {
	n := c.tail
	if n == nil {
		return
	}
	c.tail = n.prev
	if c.tail != nil {
		c.tail.next = nil
	} else {
		c.head = nil
	}
	delete(c.entries, n.key)
	n.reset()
	c.nodePool.Put(n)
	c.size.Add(-1)
}

func (c *inMemoryCache) Size() int64 {
	return c.size.Load()
}

func clone(recs []types.Recommendation) []types.Recommendation {
	if recs == nil {
		return nil
	}
	out := make([]types.Recommendation, len(recs))
	copy(out, recs)
	return out
}
