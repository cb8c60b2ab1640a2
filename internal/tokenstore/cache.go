package tokenstore

import (
	"context"
	"sync"
)

// Cache fronts a Repository with an in-memory copy so request construction
// never touches the database. Set and Clear are the only writers; every
// reader goes through Token, keeping a single source of truth for the
// process.
type Cache struct {
	repo Repository

	mu    sync.RWMutex
	token string
}

func NewCache(repo Repository) *Cache {
	return &Cache{repo: repo}
}

// Load primes the cache from durable storage. Call once at bootstrap.
func (c *Cache) Load(ctx context.Context) error {
	token, err := c.repo.Token(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	return nil
}

// Token returns the current token, or "" for anonymous callers.
func (c *Cache) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Set writes the token through to durable storage and then publishes it
// to readers.
func (c *Cache) Set(ctx context.Context, token string) error {
	if err := c.repo.Set(ctx, token); err != nil {
		return err
	}
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	return nil
}

// Clear removes the token from durable storage and memory. The in-memory
// copy is dropped even if the durable delete fails, so the process is
// logged out either way.
func (c *Cache) Clear(ctx context.Context) error {
	err := c.repo.Clear(ctx)
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
	return err
}
