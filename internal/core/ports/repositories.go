package ports

import (
	"context"

	"github.com/zhourui392/cursor-ddd-test/internal/core/domain"
)

// All lookups return (nil, nil) when the aggregate does not exist; a non-nil
// error always means the store itself failed. Services decide whether a miss
// is an error.

// UserRepository persists the User aggregate, including its role membership.
type UserRepository interface {
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Delete(ctx context.Context, id int64) error
}

// RoleRepository persists roles and their permission membership.
type RoleRepository interface {
	Save(ctx context.Context, role *domain.Role) (*domain.Role, error)
	FindByID(ctx context.Context, id int64) (*domain.Role, error)
	FindByCode(ctx context.Context, code string) (*domain.Role, error)
	FindAll(ctx context.Context) ([]*domain.Role, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Delete(ctx context.Context, id int64) error
}

// PermissionRepository persists permissions.
type PermissionRepository interface {
	Save(ctx context.Context, permission *domain.Permission) (*domain.Permission, error)
	FindByID(ctx context.Context, id int64) (*domain.Permission, error)
	FindByCode(ctx context.Context, code string) (*domain.Permission, error)
	FindAll(ctx context.Context) ([]*domain.Permission, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Delete(ctx context.Context, id int64) error
}
