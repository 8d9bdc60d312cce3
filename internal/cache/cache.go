// Package cache provides the short-lived cache for free-form text
// translations. Entries are keyed by a hash of the source text and target
// locale and expire one hour after they are written; expiry is enforced at
// read time, never by proactive purging. The Cache interface is pluggable:
// the in-memory backend fits single-process deployments, the Redis backend
// is shared across processes.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
)

// Cache is the ephemeral translation cache. Get reports a miss for absent
// and expired entries alike; Set overwrites unconditionally.
type Cache interface {
	Get(ctx context.Context, text, locale string) (string, bool, error)
	Set(ctx context.Context, text, locale, content string) error
}

// Key derives the deterministic cache key for a source text and target
// locale.
func Key(text, locale string) string {
	sum := sha256.Sum256([]byte(text + "_" + locale))
	return hex.EncodeToString(sum[:])
}
