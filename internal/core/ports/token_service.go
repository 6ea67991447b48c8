package ports

import "context"

// TokenService issues and verifies the signed bearer credentials that carry
// an authenticated username between requests.
type TokenService interface {
	// Issue builds a signed, time-bounded token for the subject.
	Issue(username string) (string, error)
	// Verify checks signature, expiry and revocation, in that order, and
	// returns the embedded subject. A failing revocation-store lookup is
	// treated as revoked (fail closed).
	Verify(ctx context.Context, token string) (string, error)
	// Revoke blacklists the token for its remaining lifetime. Expired or
	// malformed tokens are ignored: expiry already rejects them.
	Revoke(ctx context.Context, token string) error
}
