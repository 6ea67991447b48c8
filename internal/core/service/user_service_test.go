package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/zhourui392/cursor-ddd-test/internal/core/domain"
	"github.com/zhourui392/cursor-ddd-test/internal/core/ports"
)

func seedUser(t *testing.T, users *stubUserRepo, username string) *domain.User {
	t.Helper()
	u, err := domain.NewUser(username, "hash", "", "", "")
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	saved, err := users.Save(context.Background(), u)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return saved
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	users := newStubUserRepo()
	alice := seedUser(t, users, "alice")
	svc := NewUserService(users, zerolog.Nop())

	disabled := false
	updated, err := svc.Update(ctx, alice.ID, ports.UpdateUserInput{
		Nickname: "Alice",
		Email:    "alice@example.com",
		Phone:    "13812345678",
		Enabled:  &disabled,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Nickname != "Alice" || updated.Enabled {
		t.Fatalf("update not applied: %+v", updated)
	}

	// invalid email aborts before persisting anything
	if _, err := svc.Update(ctx, alice.ID, ports.UpdateUserInput{Email: "broken"}); !errors.Is(err, domain.ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	stored, _ := users.FindByID(ctx, alice.ID)
	if stored.Nickname != "Alice" {
		t.Fatalf("failed update must not partially apply: %+v", stored)
	}
}

func TestUserService_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.GetByID(ctx, 99); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.GetByUsername(ctx, "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, 99); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()
	users := newStubUserRepo()
	alice := seedUser(t, users, "alice")
	svc := NewUserService(users, zerolog.Nop())

	if err := svc.Delete(ctx, alice.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, alice.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound after delete, got %v", err)
	}
}
