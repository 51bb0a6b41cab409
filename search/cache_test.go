package search

import (
	"testing"
	"time"

	"pokeblog/models"
)

func TestQueryCacheHitAndMiss(t *testing.T) {
	c := NewQueryCache(4, time.Minute)

	if _, ok := c.Get("pikachu"); ok {
		t.Fatal("expected miss on empty cache")
	}

	c.Set("pikachu", models.SearchResponse{Query: "pikachu", NbHits: 3})
	resp, ok := c.Get("pikachu")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if resp.NbHits != 3 {
		t.Fatalf("expected 3 hits, got %d", resp.NbHits)
	}
}

func TestQueryCacheTTLExpiry(t *testing.T) {
	c := NewQueryCache(4, 10*time.Millisecond)
	c.Set("old", models.SearchResponse{Query: "old"})

	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get("old"); ok {
		t.Fatal("expected expired entry to miss")
	}
}

func TestQueryCacheLRUEviction(t *testing.T) {
	c := NewQueryCache(2, time.Minute)
	c.Set("a", models.SearchResponse{Query: "a"})
	c.Set("b", models.SearchResponse{Query: "b"})

	// Touch "a" so "b" becomes the least recently used.
	if _, ok := c.Get("a"); !ok {
		t.Fatal("expected hit for a")
	}

	c.Set("c", models.SearchResponse{Query: "c"})
	if _, ok := c.Get("b"); ok {
		t.Fatal("expected b to be evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Fatal("expected a to survive")
	}
	if _, ok := c.Get("c"); !ok {
		t.Fatal("expected c to be present")
	}
}

func TestQueryCacheClear(t *testing.T) {
	c := NewQueryCache(2, time.Minute)
	c.Set("a", models.SearchResponse{Query: "a"})
	c.Clear()
	if _, ok := c.Get("a"); ok {
		t.Fatal("expected empty cache after Clear")
	}
}
