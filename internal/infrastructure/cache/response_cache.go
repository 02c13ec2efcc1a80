package cache

import (
	"fmt"
	"time"

	"portfolio_engine/internal/app/port"
	"portfolio_engine/internal/pkg/metrics"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultTTL is how long a cached response stays valid.
const DefaultTTL = 5 * time.Minute

// ResponseCache is a typed TTL cache. Expired entries are only detected on
// lookup; no janitor goroutine sweeps them.
type ResponseCache[V any] struct {
	name  string
	store *gocache.Cache
}

var _ port.ResponseCache[struct{}] = (*ResponseCache[struct{}])(nil)

// NewResponseCache creates a cache whose entries live for ttl.
func NewResponseCache[V any](name string, ttl time.Duration) *ResponseCache[V] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ResponseCache[V]{
		name:  name,
		store: gocache.New(ttl, 0),
	}
}

// Get returns the cached value for key if it has not expired.
func (c *ResponseCache[V]) Get(key string) (V, bool) {
	if raw, found := c.store.Get(key); found {
		if value, ok := raw.(V); ok {
			metrics.CacheLookups.WithLabelValues(c.name, metrics.CacheHit).Inc()
			return value, true
		}
	}
	metrics.CacheLookups.WithLabelValues(c.name, metrics.CacheMiss).Inc()
	var zero V
	return zero, false
}

// Set stores value under key, replacing any previous entry.
func (c *ResponseCache[V]) Set(key string, value V) {
	c.store.Set(key, value, gocache.DefaultExpiration)
}

// WalletKey is the cache key of a wallet snapshot.
func WalletKey(address, chainID string) string {
	return fmt.Sprintf("wallet_%s_%s", address, chainID)
}

// TokenKey is the cache key of token metadata.
func TokenKey(address, chainID string) string {
	return fmt.Sprintf("token_%s_%s", address, chainID)
}

// NFTKey is the cache key of single NFT metadata.
func NFTKey(contract, tokenID, chainID string) string {
	return fmt.Sprintf("nft_%s_%s_%s", contract, tokenID, chainID)
}
