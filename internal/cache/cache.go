// Package cache stores evidence verification results between runs, keyed by
// URL hash, with memory, disk, and layered implementations.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the storage contract shared by all layers. Values are opaque
// bytes; callers serialize their own records.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// CacheKey derives the cache key for a URL. Hashing keeps keys filesystem
// safe regardless of URL contents; the prefix versions the record format.
func CacheKey(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "compbench:v1:" + hex.EncodeToString(hash[:])
}
