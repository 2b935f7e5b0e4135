package portal

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/daniilsolovey/hotel-portal/internal/db"
)

// SettingsCache keeps site settings in memory for ttl. A ttl <= 0 disables caching.
type SettingsCache struct {
	mu         sync.RWMutex
	ttl        time.Duration
	items      []db.SiteSetting
	loadedAt   time.Time
	generation uint64

	load func(ctx context.Context) ([]db.SiteSetting, error)
	now  func() time.Time
}

func NewSettingsCache(ttl time.Duration, load func(ctx context.Context) ([]db.SiteSetting, error)) *SettingsCache {
	return &SettingsCache{
		ttl:  ttl,
		load: load,
		now:  time.Now,
	}
}

// Get returns a copy of the cached settings, loading them when stale.
func (c *SettingsCache) Get(ctx context.Context) ([]db.SiteSetting, error) {
	c.mu.RLock()
	if c.items != nil && c.now().Sub(c.loadedAt) < c.ttl {
		items := cloneSettings(c.items)
		c.mu.RUnlock()
		return items, nil
	}
	gen := c.generation
	c.mu.RUnlock()

	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []db.SiteSetting{}
	}

	c.mu.Lock()
	// an Invalidate during the load wins over the possibly stale result
	if c.ttl > 0 && gen == c.generation {
		c.items = cloneSettings(items)
		c.loadedAt = c.now()
	}
	c.mu.Unlock()

	return items, nil
}

func (c *SettingsCache) Invalidate() {
	c.mu.Lock()
	c.items = nil
	c.generation++
	c.mu.Unlock()
}

func cloneSettings(items []db.SiteSetting) []db.SiteSetting {
	out := make([]db.SiteSetting, len(items))
	for i, s := range items {
		s.Value = bytes.Clone(s.Value)
		out[i] = s
	}

	return out
}
