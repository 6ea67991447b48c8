package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/zhourui392/cursor-ddd-test/internal/core/domain"
	"github.com/zhourui392/cursor-ddd-test/internal/core/ports"
)

const (
	// minSecretBytes enforces the 128-bit floor on signing key entropy.
	minSecretBytes  = 16
	defaultTokenTTL = 24 * time.Hour
)

// Claims is the verified payload of an issued token: the subject is the
// username, plus issued-at and expiry instants.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 bearer tokens and pairs the stateless
// verification with a TTL-bounded revocation store.
type TokenService struct {
	secret    []byte
	ttl       time.Duration
	blacklist ports.TokenBlacklist
	logger    zerolog.Logger
}

// NewTokenService validates the signing secret and applies the default token
// lifetime when none is configured.
func NewTokenService(secret string, ttl time.Duration, blacklist ports.TokenBlacklist, logger zerolog.Logger) (*TokenService, error) {
	if len(secret) < minSecretBytes {
		return nil, fmt.Errorf("token service: signing secret must be at least %d bytes", minSecretBytes)
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{
		secret:    []byte(secret),
		ttl:       ttl,
		blacklist: blacklist,
		logger:    logger,
	}, nil
}

// Issue builds a signed token binding the username, an issued-at instant, and
// an expiry at now + configured lifetime.
func (s *TokenService) Issue(username string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the token in the order the protocol requires: structure and
// signature, then expiry, then the revocation store. A failing store lookup
// fails closed — the token is reported revoked, never valid.
func (s *TokenService) Verify(ctx context.Context, token string) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", err
	}

	revoked, err := s.blacklist.IsRevoked(ctx, token)
	if err != nil {
		s.logger.Error().Err(err).Msg("revocation store lookup failed, treating token as revoked")
		return "", domain.ErrTokenRevoked
	}
	if revoked {
		return "", domain.ErrTokenRevoked
	}

	return claims.Subject, nil
}

// Revoke blacklists the token for its remaining lifetime. Tokens that are
// malformed or already past expiry are ignored: the expiry check rejects them
// on verification, so the store need not track them.
func (s *TokenService) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := s.parse(token)
	if err != nil {
		return nil
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 {
		return nil
	}
	if err := s.blacklist.Revoke(ctx, token, remaining); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (s *TokenService) parse(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !parsed.Valid || claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
