package datefmt

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Cache maps template text to its compiled formatter. Entries are never
// evicted; the set of distinct templates is expected to be small and chosen
// by callers, not by external input. Safe for concurrent use, and a template
// is compiled at most once over the life of the cache.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*Formatter

	group    singleflight.Group
	compiles atomic.Int64
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*Formatter)}
}

// Get returns the formatter stored for tmpl.
func (c *Cache) Get(tmpl string) (*Formatter, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	f, ok := c.entries[tmpl]
	return f, ok
}

// GetOrCompile returns the cached formatter for tmpl or runs compile and
// stores its result. Concurrent callers for the same uncached template share
// a single compile. Failed compiles are not cached.
func (c *Cache) GetOrCompile(tmpl string, compile func(string) (*Formatter, error)) (*Formatter, error) {
	if f, ok := c.Get(tmpl); ok {
		return f, nil
	}

	v, err, _ := c.group.Do(tmpl, func() (any, error) {
		// A previous flight may have stored the entry between our read and Do.
		if f, ok := c.Get(tmpl); ok {
			return f, nil
		}
		f, err := compile(tmpl)
		if err != nil {
			return nil, err
		}
		c.compiles.Add(1)

		c.mu.Lock()
		c.entries[tmpl] = f
		c.mu.Unlock()
		return f, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Formatter), nil
}

// Len reports the number of cached templates.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Compiles reports how many successful compiles the cache has performed.
func (c *Cache) Compiles() int64 { return c.compiles.Load() }

// Templates returns the cached template texts in no particular order.
func (c *Cache) Templates() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.entries))
	for k := range c.entries {
		out = append(out, k)
	}
	return out
}
