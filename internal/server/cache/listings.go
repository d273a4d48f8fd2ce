// Package cache holds public listing results for a short revalidation window
// so repeated page loads do not hit storage. Writes purge the whole collection.
package cache

import (
	"strconv"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/dmitrijs2005/portfolio/internal/server/models"
)

// maxEntries bounds distinct filter combinations per collection.
const maxEntries = 16

// Listings caches List results of one collection keyed by filter. A nil
// *Listings or a non-positive ttl disables caching.
//
// Every Purge bumps a generation. Add only stores a listing read under the
// current generation, so a read that raced a write is never cached.
type Listings[T any] struct {
	mu  sync.Mutex
	gen uint64
	lru *lru.LRU[string, []*T]
}

func NewListings[T any](ttl time.Duration) *Listings[T] {
	if ttl <= 0 {
		return nil
	}
	return &Listings[T]{lru: lru.NewLRU[string, []*T](maxEntries, nil, ttl)}
}

func (c *Listings[T]) Get(filter models.ListFilter) ([]*T, bool) {
	if c == nil {
		return nil, false
	}
	return c.lru.Get(Key(filter))
}

// Generation is read before loading a listing and handed back to Add.
func (c *Listings[T]) Generation() uint64 {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// Add stores items unless the collection was purged after gen was read.
func (c *Listings[T]) Add(filter models.ListFilter, items []*T, gen uint64) bool {
	if c == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	c.lru.Add(Key(filter), items)
	return true
}

// Purge drops every cached listing of the collection.
func (c *Listings[T]) Purge() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.lru.Purge()
}

func (c *Listings[T]) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}

// Key renders a filter as a stable cache key.
func Key(f models.ListFilter) string {
	return "published=" + optBool(f.Published) + "&featured=" + optBool(f.Featured)
}

func optBool(b *bool) string {
	if b == nil {
		return "any"
	}
	return strconv.FormatBool(*b)
}
