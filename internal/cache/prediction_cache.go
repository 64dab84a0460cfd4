// Package cache provides in-memory caching of computed predictions.
package cache

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/yourusername/fight-predictor/internal/models"
)

// Key identifies a prediction: the ordered pairing and the scheduled length.
// Order matters because the engine is not symmetric.
type Key struct {
	Fighter1  string
	Fighter2  string
	NumRounds int
}

// String returns string representation of cache key
func (k Key) String() string {
	return fmt.Sprintf("%s|%s|%d",
		strings.ToLower(strings.TrimSpace(k.Fighter1)),
		strings.ToLower(strings.TrimSpace(k.Fighter2)),
		k.NumRounds)
}

// PredictionCache provides in-memory caching for predictions
type PredictionCache struct {
	cache   *gocache.Cache
	ttl     time.Duration
	maxSize int

	hits   atomic.Uint64
	misses atomic.Uint64

	// OnStats is called with the hit ratio after every lookup when set.
	OnStats func(ratio float64)
}

// NewPredictionCache creates a new prediction cache. A maxSize of 0 disables the bound.
func NewPredictionCache(ttl time.Duration, maxSize int) *PredictionCache {
	return &PredictionCache{
		cache:   gocache.New(ttl, ttl*2),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

// Get retrieves a cached prediction, or nil on a miss.
func (pc *PredictionCache) Get(key Key) *models.Prediction {
	if result, found := pc.cache.Get(key.String()); found {
		if pred, ok := result.(*models.Prediction); ok {
			pc.hits.Add(1)
			pc.reportStats()
			return pred
		}
	}

	pc.misses.Add(1)
	pc.reportStats()
	return nil
}

// Set stores a prediction in cache. When the cache is full, expired items are purged
// first and the write is dropped if that frees nothing.
func (pc *PredictionCache) Set(key Key, prediction *models.Prediction) bool {
	if pc.maxSize > 0 && pc.cache.ItemCount() >= pc.maxSize {
		pc.cache.DeleteExpired()
		if pc.cache.ItemCount() >= pc.maxSize {
			return false
		}
	}

	pc.cache.Set(key.String(), prediction, pc.ttl)
	return true
}

// InvalidateFighter removes every cached prediction involving name.
func (pc *PredictionCache) InvalidateFighter(name string) int {
	target := strings.ToLower(strings.TrimSpace(name))
	removed := 0
	for k := range pc.cache.Items() {
		parts := strings.SplitN(k, "|", 3)
		if len(parts) == 3 && (parts[0] == target || parts[1] == target) {
			pc.cache.Delete(k)
			removed++
		}
	}
	return removed
}

// Clear flushes the entire cache
func (pc *PredictionCache) Clear() {
	pc.cache.Flush()
	pc.hits.Store(0)
	pc.misses.Store(0)
}

// Stats returns cache statistics
func (pc *PredictionCache) Stats() (hits, misses uint64, ratio float64) {
	hits = pc.hits.Load()
	misses = pc.misses.Load()
	if total := hits + misses; total > 0 {
		ratio = float64(hits) / float64(total)
	}
	return hits, misses, ratio
}

// ItemCount returns the number of items in cache
func (pc *PredictionCache) ItemCount() int {
	return pc.cache.ItemCount()
}

func (pc *PredictionCache) reportStats() {
	if pc.OnStats == nil {
		return
	}
	_, _, ratio := pc.Stats()
	pc.OnStats(ratio)
}
