package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/zhourui392/cursor-ddd-test/internal/core/domain"
	"github.com/zhourui392/cursor-ddd-test/internal/core/ports"
)

// AccessService coordinates the User↔Role relation. Each call is one
// read-modify-write over the user aggregate, serialized at the persistence
// boundary; the service itself holds no state.
type AccessService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	logger zerolog.Logger
}

func NewAccessService(users ports.UserRepository, roles ports.RoleRepository, logger zerolog.Logger) *AccessService {
	return &AccessService{users: users, roles: roles, logger: logger}
}

// AssignRole grants the role to the user. Assigning a role the user already
// holds is a no-op and does not touch the store.
func (s *AccessService) AssignRole(ctx context.Context, username, roleCode string) (*domain.User, error) {
	user, role, err := s.load(ctx, username, roleCode)
	if err != nil {
		return nil, err
	}

	if user.HasRole(roleCode) {
		return user, nil
	}
	if err := user.AddRole(role); err != nil {
		return nil, err
	}

	saved, err := s.users.Save(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	s.logger.Info().Str("username", username).Str("role", roleCode).Msg("role assigned")
	return saved, nil
}

// RevokeRole removes the role from the user. Revoking an unheld role is a
// no-op and does not touch the store.
func (s *AccessService) RevokeRole(ctx context.Context, username, roleCode string) (*domain.User, error) {
	user, role, err := s.load(ctx, username, roleCode)
	if err != nil {
		return nil, err
	}

	if !user.HasRole(roleCode) {
		return user, nil
	}
	if err := user.RemoveRole(role); err != nil {
		return nil, err
	}

	saved, err := s.users.Save(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	s.logger.Info().Str("username", username).Str("role", roleCode).Msg("role revoked")
	return saved, nil
}

// PermissionCodes returns the deduplicated union of permission codes across
// the user's roles. Unlike the Has* predicates, an unknown user is an error.
func (s *AccessService) PermissionCodes(ctx context.Context, username string) ([]string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, username)
	}
	return user.PermissionCodes(), nil
}

// HasRole reports whether the user holds the role. An unknown user yields
// false, not an error.
func (s *AccessService) HasRole(ctx context.Context, username, roleCode string) (bool, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return false, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return false, nil
	}
	return user.HasRole(roleCode), nil
}

// HasPermission reports whether any of the user's roles carries the
// permission. An unknown user yields false, not an error.
func (s *AccessService) HasPermission(ctx context.Context, username, permissionCode string) (bool, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return false, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return false, nil
	}
	return slices.Contains(user.PermissionCodes(), permissionCode), nil
}

// load fetches both aggregates and turns a miss on either into NotFound.
func (s *AccessService) load(ctx context.Context, username, roleCode string) (*domain.User, *domain.Role, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, username)
	}

	role, err := s.roles.FindByCode(ctx, roleCode)
	if err != nil {
		return nil, nil, fmt.Errorf("load role: %w", err)
	}
	if role == nil {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrRoleNotFound, roleCode)
	}
	return user, role, nil
}
