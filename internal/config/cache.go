package config

import (
	"strings"
	"time"
)

// CacheConfig defines settings for the seat-map response cache middleware.
// When Enabled is false or no Redis client is configured, caching is
// disabled.  Methods lists the HTTP methods to cache (e.g. GET, HEAD).
// Writes through the API, hold acquisition and release included, invalidate
// the venue's entries immediately.  A hold that lapses on its own changes no
// row, so a map cached before the lapse may show it held for up to TTL; the
// sweep clears such holds without invalidating.  Prefix namespaces keys and
// MaxBodyBytes caps the size of a cached response.
type CacheConfig struct {
	Enabled      bool          `envconfig:"CACHE_ENABLED" default:"true"`
	Methods      []string      `envconfig:"CACHE_METHODS" default:"GET"`
	TTL          time.Duration `envconfig:"CACHE_TTL" default:"30s"`
	KeyStrategy  string        `envconfig:"CACHE_KEY_STRATEGY" default:"route_query"`
	Prefix       string        `envconfig:"CACHE_PREFIX" default:"cache"`
	MaxBodyBytes int           `envconfig:"CACHE_MAX_BODY_BYTES" default:"1048576"`
}

// AllowsMethod reports whether responses to method are cacheable.
func (c CacheConfig) AllowsMethod(method string) bool {
	for _, m := range c.Methods {
		if strings.EqualFold(strings.TrimSpace(m), method) {
			return true
		}
	}
	return false
}
