package ports

import (
	"context"
	"time"
)

// TokenBlacklist is the revocation store: otherwise-valid tokens that must be
// rejected before their natural expiry. Entries are keyed by the token value
// and live only for the token's remaining lifetime. Concurrent Revoke calls
// for the same token are idempotent.
type TokenBlacklist interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
