// Package flatlru implements a fixed-capacity LRU cache whose recency list is
// stored in flat, preallocated index arrays instead of heap-allocated list
// nodes. Links between entries are slot indices of the narrowest unsigned
// integer type able to address the capacity, so a cache of up to 256 entries
// spends one byte per link.
//
// All memory is allocated once at construction; Set, Get, Has and Peek never
// allocate and run in O(1). Once the cache is full, inserting a new key
// unconditionally evicts the least recently used entry.
//
// Caches are not safe for concurrent use.
package flatlru

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrInvalidCapacity is returned by New for a non-positive capacity.
	ErrInvalidCapacity = errors.New("capacity must be positive")

	// ErrCapacityOverflow is returned by New for a capacity that no
	// supported link width can index.
	ErrCapacityOverflow = errors.New("capacity exceeds widest supported slot index")
)

// Cache is a fixed-capacity LRU cache. The concrete implementation behind the
// interface is chosen by New according to the link width the capacity needs.
type Cache[K comparable, V any] interface {
	// Capacity returns the maximum number of entries, fixed at construction.
	Capacity() int

	// Len returns the current number of entries, 0..Capacity.
	Len() int

	// Set inserts key with the given value, or updates it in place if
	// already present. Either way key becomes the most recently used
	// entry. When the cache is full, inserting a new key evicts the least
	// recently used one.
	Set(key K, value V)

	// Get returns the value stored under key and promotes it to most
	// recently used. The second return is false if key is absent.
	Get(key K) (V, bool)

	// Peek returns the value stored under key without touching recency.
	Peek(key K) (V, bool)

	// Has reports whether key is present. No recency effect.
	Has(key K) bool

	// Clear removes all entries. O(Capacity): the slot arrays are zeroed
	// so the collector can reclaim what the cache no longer references.
	Clear()

	// All returns an iterator over entries in MRU→LRU order. Each call
	// starts a fresh traversal from the then-current head. Mutating the
	// cache while a traversal is in progress is undefined behavior.
	All() iter.Seq2[K, V]

	// Keys returns an iterator over keys in MRU→LRU order.
	Keys() iter.Seq[K]

	// Values returns an iterator over values in MRU→LRU order.
	Values() iter.Seq[V]
}

// New returns an empty cache holding at most capacity entries.
func New[K comparable, V any](capacity int) (Cache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("flatlru: %w (got %d)", ErrInvalidCapacity, capacity)
	}
	if uint64(capacity) > maxCapacity {
		return nil, fmt.Errorf("flatlru: %w (got %d)", ErrCapacityOverflow, capacity)
	}
	switch PointerWidth(capacity) {
	case 8:
		return newCache[K, V, uint8](capacity), nil
	case 16:
		return newCache[K, V, uint16](capacity), nil
	default:
		return newCache[K, V, uint32](capacity), nil
	}
}

// From builds a cache of the given capacity and sets every pair produced by
// items, in sequence order. Pairs beyond capacity evict in LRU order exactly
// as sequential Set calls would.
func From[K comparable, V any](capacity int, items iter.Seq2[K, V]) (Cache[K, V], error) {
	c, err := New[K, V](capacity)
	if err != nil {
		return nil, err
	}
	for k, v := range items {
		c.Set(k, v)
	}
	return c, nil
}
