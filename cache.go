package flatlru

import "iter"

// cache is the arena-backed implementation behind Cache. P is the link type;
// forward[s] points one step toward the LRU end, backward[s] one step toward
// the MRU end. Slots are handed out in increasing order until capacity is
// reached, then recycled through eviction, so no index >= size is ever live.
type cache[K comparable, V any, P link] struct {
	capacity int
	size     int
	head     P
	tail     P
	forward  []P
	backward []P
	keys     []K
	values   []V
	index    map[K]P
}

func newCache[K comparable, V any, P link](capacity int) *cache[K, V, P] {
	return &cache[K, V, P]{
		capacity: capacity,
		forward:  make([]P, capacity),
		backward: make([]P, capacity),
		keys:     make([]K, capacity),
		values:   make([]V, capacity),
		index:    make(map[K]P, capacity),
	}
}

func (c *cache[K, V, P]) Capacity() int { return c.capacity }

func (c *cache[K, V, P]) Len() int { return c.size }

func (c *cache[K, V, P]) Has(key K) bool {
	_, ok := c.index[key]
	return ok
}

func (c *cache[K, V, P]) Peek(key K) (V, bool) {
	p, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return c.values[p], true
}

func (c *cache[K, V, P]) Get(key K) (V, bool) {
	p, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.splayToFront(p)
	return c.values[p], true
}

func (c *cache[K, V, P]) Set(key K, value V) {
	if p, ok := c.index[key]; ok {
		c.values[p] = value
		c.splayToFront(p)
		return
	}

	var p P
	if c.size < c.capacity {
		p = P(c.size)
		c.size++
	} else {
		// Full: recycle the LRU slot.
		p = c.tail
		c.tail = c.backward[p]
		delete(c.index, c.keys[p])
	}

	c.keys[p] = key
	c.values[p] = value
	c.index[key] = p

	// Link as the new head. For the very first slot this self-links, which
	// is harmless: head and tail both stay 0.
	c.forward[p] = c.head
	c.backward[c.head] = p
	c.head = p
}

// splayToFront moves a live slot to the MRU position. Size is unchanged.
func (c *cache[K, V, P]) splayToFront(p P) {
	if p == c.head {
		return
	}

	prev, next := c.backward[p], c.forward[p]
	if p == c.tail {
		c.tail = prev
	} else {
		c.backward[next] = prev
	}
	c.forward[prev] = next

	oldHead := c.head
	c.forward[p] = oldHead
	c.backward[oldHead] = p
	c.head = p
}

func (c *cache[K, V, P]) Clear() {
	c.size = 0
	c.head = 0
	c.tail = 0
	// Stale keys and values would otherwise stay reachable through the
	// arrays until their slots are recycled.
	clear(c.keys)
	clear(c.values)
	clear(c.index)
}

func (c *cache[K, V, P]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		p := c.head
		for i := 0; i < c.size; i++ {
			if !yield(c.keys[p], c.values[p]) {
				return
			}
			p = c.forward[p]
		}
	}
}

func (c *cache[K, V, P]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		p := c.head
		for i := 0; i < c.size; i++ {
			if !yield(c.keys[p]) {
				return
			}
			p = c.forward[p]
		}
	}
}

func (c *cache[K, V, P]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		p := c.head
		for i := 0; i < c.size; i++ {
			if !yield(c.values[p]) {
				return
			}
			p = c.forward[p]
		}
	}
}
