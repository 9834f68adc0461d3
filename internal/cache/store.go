package cache

import (
	"context"
	"time"
)

// Store is the query cache shared across all request handlers. Values are the
// serialized wire payloads of prior queries, keyed by the derivation in
// keys.go.
//
// There is deliberately no Delete or Clear: entries leave the cache only by
// TTL expiry or process restart. The service has no mutation endpoints, so
// stale entries cannot diverge from the record store.
type Store interface {
	// Get returns the cached payload for key. A missing or expired key is
	// reported via the bool, never via the error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key, overwriting any existing entry. A ttl <= 0
	// means the entry never expires. Concurrent writers race benignly;
	// last write wins.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
