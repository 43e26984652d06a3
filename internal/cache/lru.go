// internal/cache/lru.go
//
// Small generic LRU set.  The stub endpoint keeps the submissions it has
// accepted here so duplicate detection stays bounded in memory.  Not safe
// for concurrent use; callers hold their own lock.
package cache

import "container/list"

// LRU is a least-recently-used set of keys with a fixed capacity.
type LRU[K comparable] struct {
	cap  int
	ll   *list.List
	dict map[K]*list.Element
}

// New returns an LRU with the given capacity.  Panics on capacity < 1.
func New[K comparable](capacity int) *LRU[K] {
	if capacity < 1 {
		panic("cache: capacity must be ≥1")
	}
	return &LRU[K]{
		cap:  capacity,
		ll:   list.New(),
		dict: make(map[K]*list.Element, capacity),
	}
}

// Add inserts or refreshes key.  It reports whether key was already
// present, which lets callers test and insert in one step.
func (c *LRU[K]) Add(key K) (existed bool) {
	if ele, hit := c.dict[key]; hit {
		c.ll.MoveToFront(ele)
		return true
	}
	c.dict[key] = c.ll.PushFront(key)
	if c.ll.Len() > c.cap {
		last := c.ll.Back()
		c.ll.Remove(last)
		delete(c.dict, last.Value.(K))
	}
	return false
}

// Len reports current size.
func (c *LRU[K]) Len() int { return c.ll.Len() }
