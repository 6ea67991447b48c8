package ports

import (
	"context"

	"github.com/zhourui392/cursor-ddd-test/internal/core/domain"
)

// AccessService coordinates operations that span the User and Role aggregates
// and therefore live outside both.
type AccessService interface {
	AssignRole(ctx context.Context, username, roleCode string) (*domain.User, error)
	RevokeRole(ctx context.Context, username, roleCode string) (*domain.User, error)
	// PermissionCodes fails with domain.ErrUserNotFound for an unknown user.
	PermissionCodes(ctx context.Context, username string) ([]string, error)
	// HasRole and HasPermission report false for an unknown user instead of
	// failing. The asymmetry with PermissionCodes is deliberate.
	HasRole(ctx context.Context, username, roleCode string) (bool, error)
	HasPermission(ctx context.Context, username, permissionCode string) (bool, error)
}
