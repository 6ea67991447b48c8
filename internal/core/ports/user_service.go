package ports

import (
	"context"

	"github.com/zhourui392/cursor-ddd-test/internal/core/domain"
)

// UpdateUserInput replaces a user's mutable profile fields. A nil Enabled
// leaves the status untouched.
type UpdateUserInput struct {
	Nickname string
	Email    string
	Phone    string
	Enabled  *bool
}

// UserService exposes user administration on top of the aggregate.
type UserService interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
