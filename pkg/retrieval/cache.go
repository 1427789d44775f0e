package retrieval

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/saramhq/aegis/pkg/models"
)

// Cache is a bounded, process-local LRU for retrieval results with a TTL.
// A nil *Cache is a valid passthrough (caching disabled).
type Cache struct {
	lru *expirable.LRU[string, []models.Source]
}

// NewCache creates a cache holding at most size entries for ttl each.
func NewCache(size int, ttl time.Duration) *Cache {
	return &Cache{lru: expirable.NewLRU[string, []models.Source](size, nil, ttl)}
}

// Get returns the cached sources for a key, if present and fresh.
func (c *Cache) Get(key string) ([]models.Source, bool) {
	if c == nil {
		return nil, false
	}
	return c.lru.Get(key)
}

// Put stores sources under a key.
func (c *Cache) Put(key string, sources []models.Source) {
	if c == nil {
		return
	}
	c.lru.Add(key, sources)
}

// CacheKey derives the cache key: SHA-256 of the normalised query plus the
// search parameters.
func CacheKey(query string, domain models.Domain, topK int) string {
	h := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%d", NormalizeQuery(query), domain, topK)))
	return hex.EncodeToString(h[:])
}

// NormalizeQuery lowercases and collapses whitespace so trivially different
// phrasings share a cache entry.
func NormalizeQuery(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}
