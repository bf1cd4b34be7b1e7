// Package namecache holds a short-lived list of cog names for
// autocomplete. The list is rebuilt lazily on expiry and replaced
// atomically, so concurrent autocomplete reads never observe a partial
// refresh.
package namecache

import (
	"strings"
	"sync"
	"time"
)

// Clock supplies the current time; injected so expiry is testable.
type Clock func() time.Time

// Cache caches the derived cog-name list for a fixed TTL.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	clock   Clock
	fill    func() []string
	names   []string
	expires time.Time
}

// New builds a cache over a fill function that derives the current cog
// names. A nil clock falls back to time.Now.
func New(ttl time.Duration, clock Clock, fill func() []string) *Cache {
	if clock == nil {
		clock = time.Now
	}
	return &Cache{ttl: ttl, clock: clock, fill: fill}
}

// Names returns the cached list, refreshing it when expired.
func (c *Cache) Names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock()
	if c.names == nil || now.After(c.expires) {
		c.names = c.fill()
		c.expires = now.Add(c.ttl)
	}

	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Matches returns up to limit names containing the query,
// case-insensitively, with the literal "all" offered first.
func (c *Cache) Matches(query string, limit int) []string {
	query = strings.ToLower(query)

	var out []string
	for _, name := range append([]string{"all"}, c.Names()...) {
		if !strings.Contains(strings.ToLower(name), query) {
			continue
		}
		out = append(out, name)
		if len(out) >= limit {
			break
		}
	}
	return out
}
