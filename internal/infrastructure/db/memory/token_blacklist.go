// Package memory provides in-process adapters used in tests and in
// single-node deployments that run without Redis.
package memory

import (
	"context"
	"sync"
	"time"
)

// TokenBlacklist is a mutex-guarded revocation store. Expired entries are
// pruned lazily on each write, which bounds memory without a background sweep.
type TokenBlacklist struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
}

func NewTokenBlacklist() *TokenBlacklist {
	return &TokenBlacklist{revoked: make(map[string]time.Time)}
}

// Revoke records the token until now+ttl. Re-revoking an already-revoked
// token simply overwrites the deadline with the same value.
func (b *TokenBlacklist) Revoke(_ context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	now := time.Now()
	b.mu.Lock()
	defer b.mu.Unlock()
	for t, deadline := range b.revoked {
		if deadline.Before(now) {
			delete(b.revoked, t)
		}
	}
	b.revoked[token] = now.Add(ttl)
	return nil
}

// IsRevoked reports whether the token is currently revoked. Entries past
// their deadline read as not revoked even before pruning removes them.
func (b *TokenBlacklist) IsRevoked(_ context.Context, token string) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	deadline, ok := b.revoked[token]
	return ok && time.Now().Before(deadline), nil
}

// Len reports the number of tracked entries, including not-yet-pruned
// expired ones. Intended for tests.
func (b *TokenBlacklist) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.revoked)
}
