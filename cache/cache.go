// Package cache holds the memo stores used for literal text parsing.
package cache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is a key/value memo. Implementations must be safe for concurrent
// use; storing the same key twice with the same value is harmless.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Add(key K, value V)
	Len() int
}

// Map never evicts.
type Map[K comparable, V any] struct {
	mu sync.RWMutex
	m  map[K]V
}

func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{m: make(map[K]V)}
}

func (c *Map[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.m[key]
	return v, ok
}

func (c *Map[K, V]) Add(key K, value V) {
	c.mu.Lock()
	c.m[key] = value
	c.mu.Unlock()
}

func (c *Map[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// LRU keeps at most size entries.
type LRU[K comparable, V any] struct {
	c *lru.Cache[K, V]
}

func NewLRU[K comparable, V any](size int) (*LRU[K, V], error) {
	c, err := lru.New[K, V](size)
	if err != nil {
		return nil, err
	}
	return &LRU[K, V]{c: c}, nil
}

func (c *LRU[K, V]) Get(key K) (V, bool) {
	return c.c.Get(key)
}

func (c *LRU[K, V]) Add(key K, value V) {
	c.c.Add(key, value)
}

func (c *LRU[K, V]) Len() int {
	return c.c.Len()
}

// Nop stores nothing, for callers that want every parse recomputed.
type Nop[K comparable, V any] struct{}

func (Nop[K, V]) Get(K) (v V, ok bool) { return v, false }
func (Nop[K, V]) Add(K, V)             {}
func (Nop[K, V]) Len() int             { return 0 }

// New returns an LRU when size > 0 and an unbounded Map otherwise.
func New[K comparable, V any](size int) (Cache[K, V], error) {
	if size <= 0 {
		return NewMap[K, V](), nil
	}
	c, err := NewLRU[K, V](size)
	if err != nil {
		return nil, err
	}
	return c, nil
}
