package ports

import (
	"context"

	"github.com/zhourui392/cursor-ddd-test/internal/core/domain"
)

// PermissionService exposes permission administration.
type PermissionService interface {
	Create(ctx context.Context, name, code, description string) (*domain.Permission, error)
	GetByCode(ctx context.Context, code string) (*domain.Permission, error)
	List(ctx context.Context) ([]*domain.Permission, error)
	Update(ctx context.Context, code, name, description string) (*domain.Permission, error)
	Delete(ctx context.Context, code string) error
}
