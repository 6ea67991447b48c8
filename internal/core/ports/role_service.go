package ports

import (
	"context"

	"github.com/zhourui392/cursor-ddd-test/internal/core/domain"
)

// RoleService exposes role administration, including the Role↔Permission
// membership operations.
type RoleService interface {
	Create(ctx context.Context, name, code, description string) (*domain.Role, error)
	GetByCode(ctx context.Context, code string) (*domain.Role, error)
	List(ctx context.Context) ([]*domain.Role, error)
	Update(ctx context.Context, code, name, description string) (*domain.Role, error)
	Delete(ctx context.Context, code string) error
	GrantPermission(ctx context.Context, roleCode, permissionCode string) (*domain.Role, error)
	RevokePermission(ctx context.Context, roleCode, permissionCode string) (*domain.Role, error)
}
