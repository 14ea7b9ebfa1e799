package config

import "time"

// CacheConfig defines settings for the todo response cache middleware.
// When Enabled is false or no Redis client is configured, caching is
// disabled. Entries are scoped per authenticated user and busted by
// that user's own mutating requests, so TTL only bounds staleness
// introduced outside this process.
type CacheConfig struct {
	Enabled      bool
	TTL          time.Duration
	Prefix       string
	MaxBodyBytes int
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      envBool("CACHE_ENABLED", true),
		TTL:          envDur("CACHE_TTL", 30*time.Second),
		Prefix:       envStr("CACHE_PREFIX", "cache"),
		MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
	}
}
