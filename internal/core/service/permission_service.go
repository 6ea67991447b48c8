package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/zhourui392/cursor-ddd-test/internal/core/domain"
	"github.com/zhourui392/cursor-ddd-test/internal/core/ports"
)

// PermissionService exposes permission administration.
type PermissionService struct {
	permissions ports.PermissionRepository
	logger      zerolog.Logger
}

func NewPermissionService(permissions ports.PermissionRepository, logger zerolog.Logger) *PermissionService {
	return &PermissionService{permissions: permissions, logger: logger}
}

func (s *PermissionService) Create(ctx context.Context, name, code, description string) (*domain.Permission, error) {
	exists, err := s.permissions.ExistsByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("check permission code: %w", err)
	}
	if exists {
		return nil, domain.ErrPermissionExists
	}

	permission, err := domain.NewPermission(name, code, description)
	if err != nil {
		return nil, err
	}

	saved, err := s.permissions.Save(ctx, permission)
	if err != nil {
		return nil, fmt.Errorf("save permission: %w", err)
	}
	s.logger.Info().Str("code", code).Msg("permission created")
	return saved, nil
}

func (s *PermissionService) GetByCode(ctx context.Context, code string) (*domain.Permission, error) {
	permission, err := s.permissions.FindByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("load permission: %w", err)
	}
	if permission == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPermissionNotFound, code)
	}
	return permission, nil
}

func (s *PermissionService) List(ctx context.Context) ([]*domain.Permission, error) {
	return s.permissions.FindAll(ctx)
}

func (s *PermissionService) Update(ctx context.Context, code, name, description string) (*domain.Permission, error) {
	permission, err := s.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := permission.Update(name, description); err != nil {
		return nil, err
	}

	saved, err := s.permissions.Save(ctx, permission)
	if err != nil {
		return nil, fmt.Errorf("save permission: %w", err)
	}
	return saved, nil
}

func (s *PermissionService) Delete(ctx context.Context, code string) error {
	permission, err := s.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if err := s.permissions.Delete(ctx, permission.ID); err != nil {
		return fmt.Errorf("delete permission: %w", err)
	}
	s.logger.Info().Str("code", code).Msg("permission deleted")
	return nil
}
