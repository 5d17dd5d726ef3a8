package cache

import (
	"testing"
	"time"

	"github.com/jaidevxr/instagram-wrapped/config"
)

func testCache(t *testing.T, ttlSeconds int) *Cache {
	t.Helper()
	c, err := New(config.CacheConfig{
		Enabled:     true,
		MaxSizeMB:   10,
		TTLSeconds:  ttlSeconds,
		CounterSize: 1000,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(c.Close)
	return c
}

func TestCache_SetGet(t *testing.T) {
	c := testCache(t, 60)

	payload := []byte(`{"messages":{"totalSent":42}}`)
	if !c.SetAnalysis("upload-1:2025", payload) {
		t.Fatal("SetAnalysis() rejected the entry")
	}
	c.client.Wait()

	got, ok := c.GetAnalysis("upload-1:2025")
	if !ok {
		t.Fatal("GetAnalysis() missed a freshly set key")
	}
	if string(got) != string(payload) {
		t.Errorf("cached payload = %s, want %s", got, payload)
	}

	if _, ok := c.GetAnalysis("upload-1:2024"); ok {
		t.Error("GetAnalysis() hit on a never-set key")
	}
}

func TestCache_TTLExpiry(t *testing.T) {
	c := testCache(t, 1)

	c.SetAnalysis("ephemeral:2025", []byte("{}"))
	c.client.Wait()

	time.Sleep(1500 * time.Millisecond)

	if _, ok := c.GetAnalysis("ephemeral:2025"); ok {
		t.Error("GetAnalysis() hit after the TTL elapsed")
	}
}

func TestCache_NilReceiver(t *testing.T) {
	var c *Cache

	if _, ok := c.GetAnalysis("any"); ok {
		t.Error("nil cache reported a hit")
	}
	if c.SetAnalysis("any", []byte("{}")) {
		t.Error("nil cache accepted a set")
	}
	if snap := c.GetMetricsSnapshot(); snap.Hits != 0 || snap.Misses != 0 {
		t.Errorf("nil cache metrics = %+v, want zero values", snap)
	}
	c.Close()
}

func TestCache_MetricsSnapshot(t *testing.T) {
	c := testCache(t, 60)

	c.SetAnalysis("metrics:2025", []byte("{}"))
	c.client.Wait()
	c.GetAnalysis("metrics:2025")
	c.GetAnalysis("metrics:missing")

	snap := c.GetMetricsSnapshot()
	if snap.Hits < 1 {
		t.Errorf("Hits = %d, want >= 1", snap.Hits)
	}
	if snap.Misses < 1 {
		t.Errorf("Misses = %d, want >= 1", snap.Misses)
	}
	if snap.HitRatio <= 0 || snap.HitRatio > 1 {
		t.Errorf("HitRatio = %f, want in (0,1]", snap.HitRatio)
	}
	if snap.TTLSeconds != 60 {
		t.Errorf("TTLSeconds = %d, want 60", snap.TTLSeconds)
	}
}
