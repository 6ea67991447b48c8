package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/zhourui392/cursor-ddd-test/internal/core/domain"
)

const testSecret = "test-secret-at-least-16-bytes-long"

func newTokenSvc(t *testing.T, ttl time.Duration, blacklist *stubBlacklist) *TokenService {
	t.Helper()
	svc, err := NewTokenService(testSecret, ttl, blacklist, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	return svc
}

func TestNewTokenService_RejectsShortSecret(t *testing.T) {
	if _, err := NewTokenService("too-short", time.Hour, newStubBlacklist(), zerolog.Nop()); err == nil {
		t.Fatalf("expected error for a secret under 16 bytes")
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := newTokenSvc(t, time.Hour, newStubBlacklist())

	token, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	subject, err := svc.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if subject != "alice" {
		t.Fatalf("expected subject alice, got %q", subject)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := newTokenSvc(t, time.Millisecond, newStubBlacklist())

	token, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	time.Sleep(20 * time.Millisecond)
	if _, err := svc.Verify(context.Background(), token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_InvalidTokens(t *testing.T) {
	svc := newTokenSvc(t, time.Hour, newStubBlacklist())

	if _, err := svc.Verify(context.Background(), "not-a-jwt"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for garbage, got %v", err)
	}

	// token signed with a different key
	other, err := NewTokenService("another-secret-also-long-enough", time.Hour, newStubBlacklist(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	forged, err := other.Issue("alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := svc.Verify(context.Background(), forged); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for wrong signature, got %v", err)
	}
}

func TestTokenService_Revoked(t *testing.T) {
	blacklist := newStubBlacklist()
	svc := newTokenSvc(t, time.Hour, blacklist)

	token, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if err := svc.Revoke(context.Background(), token); err != nil {
		t.Fatalf("Revoke: %v", err)
	}

	// not expired, but revoked
	if _, err := svc.Verify(context.Background(), token); !errors.Is(err, domain.ErrTokenRevoked) {
		t.Fatalf("expected ErrTokenRevoked, got %v", err)
	}
}

func TestTokenService_RevokeIdempotent(t *testing.T) {
	blacklist := newStubBlacklist()
	svc := newTokenSvc(t, time.Hour, blacklist)

	token, _ := svc.Issue("alice")
	if err := svc.Revoke(context.Background(), token); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if err := svc.Revoke(context.Background(), token); err != nil {
		t.Fatalf("second Revoke: %v", err)
	}
	if len(blacklist.revoked) != 1 {
		t.Fatalf("expected a single blacklist entry, got %d", len(blacklist.revoked))
	}
}

func TestTokenService_RevokeIgnoresExpiredAndMalformed(t *testing.T) {
	blacklist := newStubBlacklist()

	short := newTokenSvc(t, time.Millisecond, blacklist)
	token, _ := short.Issue("alice")
	time.Sleep(20 * time.Millisecond)

	if err := short.Revoke(context.Background(), token); err != nil {
		t.Fatalf("Revoke expired: %v", err)
	}
	if err := short.Revoke(context.Background(), "garbage"); err != nil {
		t.Fatalf("Revoke malformed: %v", err)
	}
	if len(blacklist.revoked) != 0 {
		t.Fatalf("expired/malformed tokens must not reach the store, got %d entries", len(blacklist.revoked))
	}
}

func TestTokenService_FailsClosedOnStoreError(t *testing.T) {
	blacklist := newStubBlacklist()
	blacklist.lookupErr = errors.New("store unavailable")
	svc := newTokenSvc(t, time.Hour, blacklist)

	token, _ := svc.Issue("alice")
	if _, err := svc.Verify(context.Background(), token); !errors.Is(err, domain.ErrTokenRevoked) {
		t.Fatalf("store failure must read as revoked, got %v", err)
	}
}
