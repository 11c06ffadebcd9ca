// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package cache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/nycdatasets/internal/logging"
	"github.com/tomtom215/nycdatasets/internal/metrics"
)

// DefaultCleanupInterval is how often the Janitor sweeps expired entries.
const DefaultCleanupInterval = 5 * time.Minute

// Entry is one cached response body.
type Entry struct {
	Body      []byte
	ExpiresAt time.Time
}

// Cache is a thread-safe map of response bodies with per-entry expiry.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Entry
	ttl     time.Duration
	stats   Stats
}

// Stats tracks cache performance
type Stats struct {
	mu          sync.RWMutex
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// New creates an empty cache whose entries live for ttl.
//
// No goroutine is started; run a Janitor to sweep expired entries.
func New(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]Entry),
		ttl:     ttl,
		stats: Stats{
			LastCleanup: time.Now(),
		},
	}
}

// TTL returns the default entry lifetime.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Get returns the body stored under key. An expired entry is removed and
// counted as a miss.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		c.recordMiss()
		return nil, false
	}

	if time.Now().After(entry.ExpiresAt) {
		c.mu.Lock()
		// Re-check: a concurrent Set may have refreshed the key.
		if current, ok := c.entries[key]; ok && time.Now().After(current.ExpiresAt) {
			delete(c.entries, key)
			c.updateKeyCount(len(c.entries))
		}
		c.mu.Unlock()
		c.recordMiss()
		c.recordEviction()
		return nil, false
	}

	c.recordHit()
	return entry.Body, true
}

// Set stores body under key with the default TTL.
func (c *Cache) Set(key string, body []byte) {
	c.SetWithTTL(key, body, c.ttl)
}

// SetWithTTL stores body under key with a custom TTL.
func (c *Cache) SetWithTTL(key string, body []byte, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = Entry{
		Body:      body,
		ExpiresAt: time.Now().Add(ttl),
	}
	c.updateKeyCount(len(c.entries))
}

// Delete removes a single entry.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.updateKeyCount(len(c.entries))
	c.mu.Unlock()

	c.recordEviction()
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	evictions := int64(len(c.entries))
	c.entries = make(map[string]Entry)
	c.updateKeyCount(0)
	c.mu.Unlock()

	c.stats.mu.Lock()
	c.stats.Evictions += evictions
	c.stats.mu.Unlock()
}

// GetStats returns a snapshot of the counters.
func (c *Cache) GetStats() Stats {
	c.stats.mu.RLock()
	defer c.stats.mu.RUnlock()

	return Stats{
		Hits:        c.stats.Hits,
		Misses:      c.stats.Misses,
		Evictions:   c.stats.Evictions,
		TotalKeys:   c.stats.TotalKeys,
		LastCleanup: c.stats.LastCleanup,
	}
}

// HitRate returns the hit rate as a percentage
func (c *Cache) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

// Cleanup removes every expired entry and returns how many it removed.
func (c *Cache) Cleanup() int {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	c.updateKeyCount(len(c.entries))

	c.stats.mu.Lock()
	c.stats.Evictions += int64(removed)
	c.stats.LastCleanup = now
	c.stats.mu.Unlock()

	return removed
}

// updateKeyCount must be called with c.mu held.
func (c *Cache) updateKeyCount(n int) {
	c.stats.mu.Lock()
	c.stats.TotalKeys = int64(n)
	c.stats.mu.Unlock()
	metrics.CacheEntries.Set(float64(n))
}

func (c *Cache) recordHit() {
	c.stats.mu.Lock()
	c.stats.Hits++
	c.stats.mu.Unlock()
	metrics.CacheHits.Inc()
}

func (c *Cache) recordMiss() {
	c.stats.mu.Lock()
	c.stats.Misses++
	c.stats.mu.Unlock()
	metrics.CacheMisses.Inc()
}

func (c *Cache) recordEviction() {
	c.stats.mu.Lock()
	c.stats.Evictions++
	c.stats.mu.Unlock()
}

// GenerateKey builds a compact key from an endpoint name and its parameters.
// Parameters that cannot be marshaled fall back to their %v form.
func GenerateKey(method string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", method, params)
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", method, hash[:16])
}

// Janitor periodically sweeps expired entries. It implements suture.Service.
type Janitor struct {
	cache    *Cache
	interval time.Duration
}

// NewJanitor creates a sweeper for c. A non-positive interval uses
// DefaultCleanupInterval.
func NewJanitor(c *Cache, interval time.Duration) *Janitor {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	return &Janitor{cache: c, interval: interval}
}

// Serve sweeps until ctx is canceled.
func (j *Janitor) Serve(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if removed := j.cache.Cleanup(); removed > 0 {
				logging.Debug().Int("removed", removed).Msg("Swept expired cache entries")
			}
		}
	}
}

// String implements fmt.Stringer for suture logging.
func (j *Janitor) String() string {
	return "cache-janitor"
}
