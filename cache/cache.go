// Package cache provides memoization for floor plan generation.
// Generation is deterministic apart from artifact identifiers, so callers
// servicing repeated requests for the same requirements can reuse results
// instead of recomputing the full pipeline.
package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
	"sync"

	"github.com/planforge-xyz/go-planforge/generator"
	"github.com/planforge-xyz/go-planforge/plan"
)

// GenerationCache caches generation results keyed by a requirements hash.
type GenerationCache struct {
	mu        sync.Mutex
	cache     map[string]*generator.Result
	maxSize   int
	hits      int64
	misses    int64
	evictions int64
}

// NewGenerationCache creates a cache with the specified maximum size.
// When the cache is full the next insert evicts an arbitrary entry.
// Set maxSize to 0 for an unbounded cache.
func NewGenerationCache(maxSize int) *GenerationCache {
	return &GenerationCache{
		cache:   make(map[string]*generator.Result),
		maxSize: maxSize,
	}
}

// hashRequirements creates a deterministic hash over every requirements
// field that influences generation, plus the objective name. Room order is
// hashed as given because the synthesizer's stable sort makes input order
// significant for equal rooms.
func hashRequirements(req *plan.Requirements, objective string) string {
	h := sha256.New()
	buf := make([]byte, 8)

	writeFloat := func(v float64) {
		binary.BigEndian.PutUint64(buf, math.Float64bits(v))
		h.Write(buf)
	}
	writeString := func(s string) {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}

	writeFloat(req.TotalArea)
	writeFloat(float64(req.RoomCount))
	writeString(req.Style)
	writeString(req.BuildingCode)
	writeString(objective)

	c := req.Constraints
	for _, v := range []float64{c.MaxWidth, c.MaxLength, c.MinRoomSize, c.CorridorWidth, c.CeilingHeight} {
		writeFloat(v)
	}

	for _, room := range req.Rooms {
		writeString(room.Type)
		writeFloat(room.Area)
		writeString(string(room.Priority))
		if room.Required {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}

	return string(h.Sum(nil))
}

// Get retrieves a cached result for the given requirements and objective.
// Returns nil if not found.
func (c *GenerationCache) Get(req *plan.Requirements, objective string) *generator.Result {
	key := hashRequirements(req, objective)

	c.mu.Lock()
	defer c.mu.Unlock()

	if result, ok := c.cache[key]; ok {
		c.hits++
		return result
	}
	c.misses++
	return nil
}

// Put stores a result.
func (c *GenerationCache) Put(req *plan.Requirements, objective string, result *generator.Result) {
	key := hashRequirements(req, objective)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxSize > 0 && len(c.cache) >= c.maxSize {
		for k := range c.cache {
			delete(c.cache, k)
			c.evictions++
			break
		}
	}
	c.cache[key] = result
}

// GetOrCompute retrieves from cache or computes and caches the result.
// Compute errors are returned without being cached.
func (c *GenerationCache) GetOrCompute(req *plan.Requirements, objective string, compute func() (*generator.Result, error)) (*generator.Result, error) {
	if result := c.Get(req, objective); result != nil {
		return result, nil
	}

	result, err := compute()
	if err != nil {
		return nil, err
	}
	c.Put(req, objective, result)
	return result, nil
}

// Clear removes all entries from the cache.
func (c *GenerationCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]*generator.Result)
}

// Size returns the current number of cached entries.
func (c *GenerationCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cache)
}

// Stats returns cache statistics.
type Stats struct {
	Size      int
	MaxSize   int
	Hits      int64
	Misses    int64
	Evictions int64
	HitRate   float64
}

// Stats returns cache statistics.
func (c *GenerationCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := c.hits + c.misses
	hitRate := 0.0
	if total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}

	return Stats{
		Size:      len(c.cache),
		MaxSize:   c.maxSize,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		HitRate:   hitRate,
	}
}
