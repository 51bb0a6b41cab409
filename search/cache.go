package search

import (
	"container/list"
	"sync"
	"time"

	"pokeblog/models"
)

// QueryCache is a best-effort, per-process cache of search responses
// keyed by the literal query string and filters. Entries expire after a
// fixed TTL and the least recently used entry is evicted at capacity. A
// stale-but-unexpired hit is an acceptable outcome, never a correctness
// violation.
type QueryCache struct {
	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List
	cap     int
	ttl     time.Duration
}

type cacheEntry struct {
	key       string
	resp      models.SearchResponse
	timestamp time.Time
}

func NewQueryCache(capacity int, ttl time.Duration) *QueryCache {
	if capacity < 1 {
		capacity = 1
	}
	return &QueryCache{
		entries: make(map[string]*list.Element),
		order:   list.New(),
		cap:     capacity,
		ttl:     ttl,
	}
}

func (c *QueryCache) Get(key string) (models.SearchResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return models.SearchResponse{}, false
	}
	entry := el.Value.(*cacheEntry)
	if time.Since(entry.timestamp) > c.ttl {
		c.order.Remove(el)
		delete(c.entries, key)
		return models.SearchResponse{}, false
	}
	c.order.MoveToFront(el)
	return entry.resp, true
}

func (c *QueryCache) Set(key string, resp models.SearchResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		entry := el.Value.(*cacheEntry)
		entry.resp = resp
		entry.timestamp = time.Now()
		c.order.MoveToFront(el)
		return
	}

	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, resp: resp, timestamp: time.Now()})
	for len(c.entries) > c.cap {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
	}
}

func (c *QueryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*list.Element)
	c.order.Init()
}
