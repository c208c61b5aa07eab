package contracts

import (
	"context"
	"time"
)

// ReleaseOutcome reports what Release found under the key.
type ReleaseOutcome int

const (
	ReleaseDeleted ReleaseOutcome = iota
	ReleaseExpired
	ReleaseForeign
)

// CacheRepository keeps JSON documents with a TTL and hands out owner tokens
// for short lived exclusive keys.
type CacheRepository interface {
	// GetJSON decodes the document into dest. A missing key reports false.
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
	Claim(ctx context.Context, key, token string, ttl time.Duration) (bool, error)
	// Release deletes key only while it still holds token.
	Release(ctx context.Context, key, token string) (ReleaseOutcome, error)
}
