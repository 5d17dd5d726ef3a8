package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/rs/zerolog/log"

	"github.com/jaidevxr/instagram-wrapped/config"
)

// Cache holds serialized AnalysisResult documents keyed by uploadID:year, so
// flipping between years in the story view does not re-run aggregation.
// Entries are superseded wholesale; there is no partial update.
type Cache struct {
	client *ristretto.Cache
	ttl    time.Duration
}

// New creates the analysis result cache. Cost accounting is in bytes of the
// serialized result.
func New(cfg config.CacheConfig) (*Cache, error) {
	maxCost := int64(cfg.MaxSizeMB) * 1024 * 1024

	client, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: int64(cfg.CounterSize),
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("max_size_mb", cfg.MaxSizeMB).
		Int("ttl_seconds", cfg.TTLSeconds).
		Msg("Analysis cache initialized")

	return &Cache{
		client: client,
		ttl:    time.Duration(cfg.TTLSeconds) * time.Second,
	}, nil
}

// GetAnalysis returns the cached serialized result for an uploadID:year key.
// Safe to call on a nil cache (caching disabled).
func (c *Cache) GetAnalysis(key string) ([]byte, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	value, found := c.client.Get(key)
	if !found {
		return nil, false
	}
	payload, ok := value.([]byte)
	return payload, ok
}

// SetAnalysis stores a serialized result with the configured TTL.
func (c *Cache) SetAnalysis(key string, payload []byte) bool {
	if c == nil || c.client == nil {
		return false
	}
	return c.client.SetWithTTL(key, payload, int64(len(payload)), c.ttl)
}

// Close cleanly shuts down the cache.
func (c *Cache) Close() {
	if c != nil && c.client != nil {
		c.client.Close()
		log.Info().Msg("Analysis cache closed")
	}
}

// MetricsSnapshot is the point-in-time view served by the metrics endpoint.
type MetricsSnapshot struct {
	Hits        uint64  `json:"hits"`
	Misses      uint64  `json:"misses"`
	KeysAdded   uint64  `json:"keys_added"`
	KeysEvicted uint64  `json:"keys_evicted"`
	CostAdded   uint64  `json:"cost_added"`
	CostEvicted uint64  `json:"cost_evicted"`
	HitRatio    float64 `json:"hit_ratio"`
	TTLSeconds  int     `json:"ttl_seconds"`
}

func (c *Cache) GetMetricsSnapshot() MetricsSnapshot {
	if c == nil || c.client == nil || c.client.Metrics == nil {
		return MetricsSnapshot{}
	}

	m := c.client.Metrics
	hits := m.Hits()
	misses := m.Misses()

	hitRatio := 0.0
	if total := hits + misses; total > 0 {
		hitRatio = float64(hits) / float64(total)
	}

	return MetricsSnapshot{
		Hits:        hits,
		Misses:      misses,
		KeysAdded:   m.KeysAdded(),
		KeysEvicted: m.KeysEvicted(),
		CostAdded:   m.CostAdded(),
		CostEvicted: m.CostEvicted(),
		HitRatio:    hitRatio,
		TTLSeconds:  int(c.ttl.Seconds()),
	}
}
