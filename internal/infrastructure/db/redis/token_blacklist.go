package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// blacklistPrefix namespaces revoked-token keys in the shared Redis instance.
const blacklistPrefix = "token:blacklist:"

// TokenBlacklist is the Redis-backed revocation store. Each revoked token is
// a key whose TTL equals the token's remaining lifetime, so Redis itself
// prunes entries the moment the expiry check would reject them anyway.
type TokenBlacklist struct {
	client *redis.Client
}

// NewTokenBlacklist creates a TokenBlacklist wrapping the given Redis client.
func NewTokenBlacklist(client *redis.Client) *TokenBlacklist {
	return &TokenBlacklist{client: client}
}

// Revoke records the token until its expiry. SET is idempotent, so concurrent
// revocations of the same token collapse into one entry.
func (b *TokenBlacklist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := b.client.Set(ctx, blacklistPrefix+token, "revoked", ttl).Err(); err != nil {
		return fmt.Errorf("blacklist set: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token has been revoked. Errors propagate so
// the caller can fail closed.
func (b *TokenBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := b.client.Exists(ctx, blacklistPrefix+token).Result()
	if err != nil {
		return false, fmt.Errorf("blacklist check: %w", err)
	}
	return n > 0, nil
}
