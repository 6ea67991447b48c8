package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/zhourui392/cursor-ddd-test/internal/core/domain"
	"github.com/zhourui392/cursor-ddd-test/internal/core/ports"
)

// RoleService exposes role administration and the Role↔Permission membership.
type RoleService struct {
	roles       ports.RoleRepository
	permissions ports.PermissionRepository
	logger      zerolog.Logger
}

func NewRoleService(roles ports.RoleRepository, permissions ports.PermissionRepository, logger zerolog.Logger) *RoleService {
	return &RoleService{roles: roles, permissions: permissions, logger: logger}
}

func (s *RoleService) Create(ctx context.Context, name, code, description string) (*domain.Role, error) {
	exists, err := s.roles.ExistsByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("check role code: %w", err)
	}
	if exists {
		return nil, domain.ErrRoleExists
	}

	role, err := domain.NewRole(name, code, description)
	if err != nil {
		return nil, err
	}

	saved, err := s.roles.Save(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("save role: %w", err)
	}
	s.logger.Info().Str("code", code).Msg("role created")
	return saved, nil
}

func (s *RoleService) GetByCode(ctx context.Context, code string) (*domain.Role, error) {
	role, err := s.roles.FindByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("load role: %w", err)
	}
	if role == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRoleNotFound, code)
	}
	return role, nil
}

func (s *RoleService) List(ctx context.Context) ([]*domain.Role, error) {
	return s.roles.FindAll(ctx)
}

func (s *RoleService) Update(ctx context.Context, code, name, description string) (*domain.Role, error) {
	role, err := s.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := role.Update(name, description); err != nil {
		return nil, err
	}

	saved, err := s.roles.Save(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("save role: %w", err)
	}
	return saved, nil
}

func (s *RoleService) Delete(ctx context.Context, code string) error {
	role, err := s.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if err := s.roles.Delete(ctx, role.ID); err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	s.logger.Info().Str("code", code).Msg("role deleted")
	return nil
}

// GrantPermission attaches a permission to the role. Granting a permission
// the role already holds changes nothing.
func (s *RoleService) GrantPermission(ctx context.Context, roleCode, permissionCode string) (*domain.Role, error) {
	role, err := s.GetByCode(ctx, roleCode)
	if err != nil {
		return nil, err
	}
	permission, err := s.permissions.FindByCode(ctx, permissionCode)
	if err != nil {
		return nil, fmt.Errorf("load permission: %w", err)
	}
	if permission == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPermissionNotFound, permissionCode)
	}

	if role.HasPermission(permissionCode) {
		return role, nil
	}
	if err := role.AddPermission(permission); err != nil {
		return nil, err
	}

	saved, err := s.roles.Save(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("save role: %w", err)
	}
	s.logger.Info().Str("role", roleCode).Str("permission", permissionCode).Msg("permission granted")
	return saved, nil
}

// RevokePermission detaches a permission from the role. Revoking an unheld
// permission changes nothing.
func (s *RoleService) RevokePermission(ctx context.Context, roleCode, permissionCode string) (*domain.Role, error) {
	role, err := s.GetByCode(ctx, roleCode)
	if err != nil {
		return nil, err
	}
	permission, err := s.permissions.FindByCode(ctx, permissionCode)
	if err != nil {
		return nil, fmt.Errorf("load permission: %w", err)
	}
	if permission == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPermissionNotFound, permissionCode)
	}

	if !role.HasPermission(permissionCode) {
		return role, nil
	}
	if err := role.RemovePermission(permission); err != nil {
		return nil, err
	}

	saved, err := s.roles.Save(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("save role: %w", err)
	}
	s.logger.Info().Str("role", roleCode).Str("permission", permissionCode).Msg("permission revoked")
	return saved, nil
}
