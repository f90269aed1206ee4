package listview

import (
	"sync"
	"time"
)

// pageKey identifies one fetched window. Sort is deliberately not part of the
// key: sorting happens client-side over the fetched page, so two queries that
// differ only in sort share the same cached page.
type pageKey struct {
	Skip  int
	Limit int
}

// CacheStats is a snapshot of cache effectiveness counters.
type CacheStats struct {
	Hits          int64
	Misses        int64
	Invalidations int64
	Size          int
}

// pageCache holds fetched pages for a single entity type, keyed by the exact
// skip/limit window. Invalidation is pull-based: a mutation clears the cache
// and the next load refetches; nothing is pushed to readers.
type pageCache[T any] struct {
	mu    sync.Mutex
	ttl   time.Duration // 0 means entries live until invalidated
	items map[pageKey]cacheEntry[T]
	stats CacheStats
}

type cacheEntry[T any] struct {
	page     Page[T]
	storedAt time.Time
}

func newPageCache[T any](ttl time.Duration) *pageCache[T] {
	return &pageCache[T]{ttl: ttl, items: make(map[pageKey]cacheEntry[T])}
}

func (c *pageCache[T]) get(k pageKey) (Page[T], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.items[k]
	if ok && c.ttl > 0 && time.Since(e.storedAt) >= c.ttl {
		delete(c.items, k)
		ok = false
	}
	if !ok {
		c.stats.Misses++
		var zero Page[T]
		return zero, false
	}
	c.stats.Hits++
	return e.page, true
}

func (c *pageCache[T]) put(k pageKey, p Page[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[k] = cacheEntry[T]{page: p, storedAt: time.Now()}
}

// Invalidate drops every cached page for the entity. Called through the
// Invalidator after any create, update or delete.
func (c *pageCache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[pageKey]cacheEntry[T])
	c.stats.Invalidations++
}

func (c *pageCache[T]) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.stats
	s.Size = len(c.items)
	return s
}

// Invalidatable is the narrow surface the Invalidator needs from a cache.
type Invalidatable interface {
	Invalidate()
}

// Invalidator is the process-wide registry tying mutations to list caches.
// Services call Invalidate(entity) after a write; controllers register their
// cache under the entity name at construction. This replaces ambient global
// cache state with one explicit, observable interface.
type Invalidator struct {
	mu      sync.Mutex
	targets map[string][]Invalidatable
}

func NewInvalidator() *Invalidator {
	return &Invalidator{targets: make(map[string][]Invalidatable)}
}

// Register attaches a cache to an entity name. Multiple controllers may watch
// the same entity.
func (i *Invalidator) Register(entity string, c Invalidatable) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.targets[entity] = append(i.targets[entity], c)
}

// Invalidate marks every cache registered under the entity as stale.
// Unknown entities are a no-op so services never have to care whether a list
// view for their entity exists yet.
func (i *Invalidator) Invalidate(entity string) {
	i.mu.Lock()
	targets := i.targets[entity]
	i.mu.Unlock()
	for _, c := range targets {
		c.Invalidate()
	}
}
