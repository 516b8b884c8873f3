// SPDX-License-Identifier: Unlicense OR MIT

package text

import "sync"

// Cache is a Measurer that remembers the most recently measured
// layouts of another Measurer. It is safe for concurrent use.
//
// The Lines of a cached Layout are shared between callers and must
// not be modified.
type Cache struct {
	measurer Measurer

	mu         sync.Mutex
	m          map[layoutKey]*layoutElem
	head, tail *layoutElem
}

type layoutElem struct {
	next, prev *layoutElem
	key        layoutKey
	layout     Layout
}

type layoutKey struct {
	str  string
	opts Options
}

const maxSize = 1000

// NewCache returns a Cache in front of m.
func NewCache(m Measurer) *Cache {
	return &Cache{measurer: m}
}

// Measure implements Measurer. Errors from the underlying Measurer
// are returned and not cached.
func (c *Cache) Measure(s string, opts Options) (Layout, error) {
	if !opts.Wrap {
		opts.MaxWidth = 0
	}
	k := layoutKey{str: s, opts: opts}
	c.mu.Lock()
	l, ok := c.get(k)
	c.mu.Unlock()
	if ok {
		return l, nil
	}
	l, err := c.measurer.Measure(s, opts)
	if err != nil {
		return Layout{}, err
	}
	c.mu.Lock()
	c.put(k, l)
	c.mu.Unlock()
	return l, nil
}

func (c *Cache) get(k layoutKey) (Layout, bool) {
	if lt, ok := c.m[k]; ok {
		c.remove(lt)
		c.insert(lt)
		return lt.layout, true
	}
	return Layout{}, false
}

func (c *Cache) put(k layoutKey, lt Layout) {
	if c.m == nil {
		c.m = make(map[layoutKey]*layoutElem)
		c.head = new(layoutElem)
		c.tail = new(layoutElem)
		c.head.prev = c.tail
		c.tail.next = c.head
	}
	if old, ok := c.m[k]; ok {
		// Measured concurrently by another caller.
		c.remove(old)
	}
	val := &layoutElem{key: k, layout: lt}
	c.m[k] = val
	c.insert(val)
	if len(c.m) > maxSize {
		oldest := c.tail.next
		c.remove(oldest)
		delete(c.m, oldest.key)
	}
}

func (c *Cache) remove(lt *layoutElem) {
	lt.next.prev = lt.prev
	lt.prev.next = lt.next
}

func (c *Cache) insert(lt *layoutElem) {
	lt.next = c.head
	lt.prev = c.head.prev
	lt.prev.next = lt
	lt.next.prev = lt
}
