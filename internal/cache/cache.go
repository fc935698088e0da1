// Package cache provides an in-memory memo for pairwise edit distances.
package cache

import (
	gocache "github.com/patrickmn/go-cache"
)

// Distances memoizes a symmetric integer distance function over string
// pairs. The consolidation pass compares every distinct spelling against
// every other, so the same pair is evaluated repeatedly; entries never
// expire because a distance never changes within a run.
type Distances struct {
	cache *gocache.Cache
	fn    func(a, b string) int
}

// NewDistances creates a memo around the given distance function.
func NewDistances(fn func(a, b string) int) *Distances {
	return &Distances{
		cache: gocache.New(gocache.NoExpiration, 0),
		fn:    fn,
	}
}

// Get returns the distance between a and b, computing it at most once per
// unordered pair.
func (d *Distances) Get(a, b string) int {
	key := pairKey(a, b)
	if val, found := d.cache.Get(key); found {
		return val.(int)
	}

	dist := d.fn(a, b)
	d.cache.Set(key, dist, gocache.NoExpiration)
	return dist
}

// Len returns the number of memoized pairs.
func (d *Distances) Len() int {
	return d.cache.ItemCount()
}

// pairKey builds an order-independent key; the NUL separator cannot occur
// in normalized names, which keeps distinct pairs from colliding.
func pairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "\x00" + b
}
