package ports

import (
	"context"

	"github.com/zhourui392/cursor-ddd-test/internal/core/domain"
)

// RegisterInput carries a validated registration command into the core.
type RegisterInput struct {
	Username string
	Password string
	Nickname string
	Email    string
	Phone    string
	// Roles holds requested role codes. Empty means the default role.
	Roles []string
}

// AuthService implements the authentication protocol: registration, login
// with token issuance, and logout with token revocation.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	Logout(ctx context.Context, token string) error
}
