package dataset

import (
	"context"
	"sync"
	"time"

	"wordpractice/internal/models"
)

// Cache keeps the loaded dataset for a short TTL so page views do not
// refetch the CSV on every request. The cached result is read-only once
// built and safe to share across concurrent sessions. A failed refresh
// keeps serving the previous result.
type Cache struct {
	source    string
	chunkSize int
	ttl       time.Duration

	mu        sync.RWMutex
	items     []models.WordItem
	sets      []*models.WordSet
	fetchedAt time.Time
}

// NewCache creates a cache over source.
func NewCache(source string, chunkSize int, ttl time.Duration) *Cache {
	return &Cache{source: source, chunkSize: chunkSize, ttl: ttl}
}

// Sets returns the word sets, loading or refreshing the dataset when the
// cached copy is missing or stale.
func (c *Cache) Sets(ctx context.Context) ([]*models.WordSet, error) {
	_, sets, err := c.get(ctx)
	return sets, err
}

// Items returns every loaded row in original order, for the word list
// view.
func (c *Cache) Items(ctx context.Context) ([]models.WordItem, error) {
	items, _, err := c.get(ctx)
	return items, err
}

func (c *Cache) get(ctx context.Context) ([]models.WordItem, []*models.WordSet, error) {
	c.mu.RLock()
	if c.sets != nil && time.Since(c.fetchedAt) < c.ttl {
		items, sets := c.items, c.sets
		c.mu.RUnlock()
		return items, sets, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another request may have refreshed while we waited for the lock.
	if c.sets != nil && time.Since(c.fetchedAt) < c.ttl {
		return c.items, c.sets, nil
	}

	items, grouped, err := Load(ctx, c.source)
	if err != nil {
		if c.sets != nil {
			return c.items, c.sets, nil
		}
		return nil, nil, err
	}

	sets, err := BuildSets(items, grouped, c.chunkSize)
	if err != nil {
		if c.sets != nil {
			return c.items, c.sets, nil
		}
		return nil, nil, err
	}

	c.items = items
	c.sets = sets
	c.fetchedAt = time.Now()
	return c.items, c.sets, nil
}
