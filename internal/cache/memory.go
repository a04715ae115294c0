package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryPages caches fetched pages in memory for one crawl run.
type MemoryPages struct {
	pages *gocache.Cache
}

// NewMemoryPages creates a page cache whose entries expire after ttl.
func NewMemoryPages(ttl, cleanupInterval time.Duration) *MemoryPages {
	return &MemoryPages{
		pages: gocache.New(ttl, cleanupInterval),
	}
}

// Get returns the cached page for url, if present and unexpired.
func (c *MemoryPages) Get(url string) (string, bool) {
	if val, found := c.pages.Get(pageKey(url)); found {
		return val.(string), true
	}
	return "", false
}

// Set stores the page for url under the cache's TTL.
func (c *MemoryPages) Set(url, html string) {
	c.pages.Set(pageKey(url), html, gocache.DefaultExpiration)
}

// Delete evicts the page for url.
func (c *MemoryPages) Delete(url string) {
	c.pages.Delete(pageKey(url))
}

// Clear evicts every cached page.
func (c *MemoryPages) Clear() {
	c.pages.Flush()
}
