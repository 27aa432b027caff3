package intel

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"earlywarn/internal/domain"
	"earlywarn/internal/ports"
)

// Cache decorates a provider with a Redis response cache so repeated scans of
// the same URL do not burn vendor quota. Cache failures fall through to the
// wrapped provider.
type Cache struct {
	next ports.ThreatIntel
	rdb  *redis.Client
	ttl  time.Duration
	log  *logrus.Logger
}

func NewCache(next ports.ThreatIntel, rdb *redis.Client, ttl time.Duration, log *logrus.Logger) *Cache {
	return &Cache{next: next, rdb: rdb, ttl: ttl, log: log}
}

// cachedSignal is the wire form of a signal in Redis.
type cachedSignal struct {
	SafeBrowsing *bool `json:"sb,omitempty"`
	VirusTotal   *bool `json:"vt,omitempty"`
	Hits         int   `json:"hits"`
}

func toCached(sig domain.ThreatIntelSignal) cachedSignal {
	return cachedSignal{SafeBrowsing: sig.FlaggedBySafeBrowsing, VirusTotal: sig.FlaggedByVirusTotal, Hits: sig.VendorHitCount}
}

func fromCached(c cachedSignal) domain.ThreatIntelSignal {
	return domain.ThreatIntelSignal{FlaggedBySafeBrowsing: c.SafeBrowsing, FlaggedByVirusTotal: c.VirusTotal, VendorHitCount: c.Hits}
}

// known reports whether at least one vendor answered; pure-unknown results
// are not worth caching.
func known(sig domain.ThreatIntelSignal) bool {
	return sig.FlaggedBySafeBrowsing != nil || sig.FlaggedByVirusTotal != nil
}

func cacheKey(rawURL string) string {
	sum := sha256.Sum256([]byte(rawURL))
	return "intel:" + hex.EncodeToString(sum[:])
}

func (c *Cache) Lookup(ctx context.Context, rawURL string) domain.ThreatIntelSignal {
	key := cacheKey(rawURL)
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var cached cachedSignal
		if json.Unmarshal(data, &cached) == nil {
			return fromCached(cached)
		}
	} else if err != redis.Nil {
		c.log.Debugf("intel cache read: %v", err)
	}

	sig := c.next.Lookup(ctx, rawURL)
	if known(sig) {
		if data, err := json.Marshal(toCached(sig)); err == nil {
			if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
				c.log.Debugf("intel cache write: %v", err)
			}
		}
	}
	return sig
}

var _ ports.ThreatIntel = (*Cache)(nil)
