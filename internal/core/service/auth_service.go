package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/zhourui392/cursor-ddd-test/internal/core/domain"
	"github.com/zhourui392/cursor-ddd-test/internal/core/ports"
)

// AuthService implements registration, login and logout on top of the user
// aggregate, the credential hasher and the token service.
type AuthService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, roles ports.RoleRepository, hasher ports.PasswordHasher, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		roles:  roles,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// Register creates a new user. The raw password is hashed before it touches
// the aggregate; a registration without requested roles gets the default role.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	exists, err := s.users.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	if input.Password == "" {
		return nil, fmt.Errorf("%w: password", domain.ErrFieldRequired)
	}
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := domain.NewUser(input.Username, hash, input.Nickname, input.Email, input.Phone)
	if err != nil {
		return nil, err
	}

	codes := input.Roles
	if len(codes) == 0 {
		codes = []string{domain.DefaultRoleCode}
	}
	for _, code := range codes {
		role, err := s.roles.FindByCode(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("load role %s: %w", code, err)
		}
		if role == nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrRoleNotFound, code)
		}
		if err := user.AddRole(role); err != nil {
			return nil, err
		}
	}

	saved, err := s.users.Save(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	s.logger.Info().Str("username", saved.Username).Msg("user registered")
	return saved, nil
}

// Login verifies the credentials and issues a token. An unknown username and
// a wrong password return the same error so accounts cannot be enumerated; a
// disabled account is only reported once the password checked out.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil || !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}
	if !user.Enabled {
		return "", nil, domain.ErrUserDisabled
	}

	user.RecordLogin()
	if user, err = s.users.Save(ctx, user); err != nil {
		return "", nil, fmt.Errorf("record login: %w", err)
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", user.Username).Msg("user logged in")
	return token, user, nil
}

// Logout revokes the presented token for its remaining lifetime.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}
