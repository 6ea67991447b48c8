package service

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/rs/zerolog"

	"github.com/zhourui392/cursor-ddd-test/internal/core/domain"
)

// seedAccessFixture stores a user "alice" holding ROLE_USER (user:read) and an
// unassigned ROLE_ADMIN carrying user:read and user:write.
func seedAccessFixture(t *testing.T) (*stubUserRepo, *stubRoleRepo) {
	t.Helper()
	ctx := context.Background()
	users, roles := newStubUserRepo(), newStubRoleRepo()

	read, _ := domain.NewPermission("Read users", "user:read", "")
	write, _ := domain.NewPermission("Write users", "user:write", "")

	base, _ := domain.NewRole("Regular user", domain.DefaultRoleCode, "")
	_ = base.AddPermission(read)
	base, _ = roles.Save(ctx, base)

	admin, _ := domain.NewRole("Administrator", "ROLE_ADMIN", "")
	_ = admin.AddPermission(read)
	_ = admin.AddPermission(write)
	_, _ = roles.Save(ctx, admin)

	alice, err := domain.NewUser("alice", "hash", "Alice", "", "")
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	_ = alice.AddRole(base)
	if _, err := users.Save(ctx, alice); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return users, roles
}

func TestAccessService_AssignAndRevokeRole(t *testing.T) {
	ctx := context.Background()
	users, roles := seedAccessFixture(t)
	svc := NewAccessService(users, roles, zerolog.Nop())

	if _, err := svc.AssignRole(ctx, "alice", "ROLE_ADMIN"); err != nil {
		t.Fatalf("AssignRole: %v", err)
	}

	has, err := svc.HasRole(ctx, "alice", "ROLE_ADMIN")
	if err != nil || !has {
		t.Fatalf("expected alice to hold ROLE_ADMIN, got %v, %v", has, err)
	}

	codes, err := svc.PermissionCodes(ctx, "alice")
	if err != nil {
		t.Fatalf("PermissionCodes: %v", err)
	}
	if !slices.Contains(codes, "user:write") {
		t.Fatalf("ROLE_ADMIN permissions must appear, got %v", codes)
	}
	if len(codes) != 2 {
		t.Fatalf("union must deduplicate user:read, got %v", codes)
	}

	if _, err := svc.RevokeRole(ctx, "alice", "ROLE_ADMIN"); err != nil {
		t.Fatalf("RevokeRole: %v", err)
	}
	has, _ = svc.HasRole(ctx, "alice", "ROLE_ADMIN")
	if has {
		t.Fatalf("role must be gone after revoke")
	}

	codes, _ = svc.PermissionCodes(ctx, "alice")
	if slices.Contains(codes, "user:write") {
		t.Fatalf("admin-only permission must disappear, got %v", codes)
	}
	if !slices.Contains(codes, "user:read") {
		t.Fatalf("permission still granted by the base role must survive, got %v", codes)
	}
}

func TestAccessService_AssignIsIdempotent(t *testing.T) {
	ctx := context.Background()
	users, roles := seedAccessFixture(t)
	svc := NewAccessService(users, roles, zerolog.Nop())

	saves := users.saves
	user, err := svc.AssignRole(ctx, "alice", domain.DefaultRoleCode)
	if err != nil {
		t.Fatalf("AssignRole held role: %v", err)
	}
	if len(user.Roles) != 1 {
		t.Fatalf("membership size must not change, got %d", len(user.Roles))
	}
	if users.saves != saves {
		t.Fatalf("no-op assignment must not persist")
	}

	// revoking an unheld role is likewise a no-op
	if _, err := svc.RevokeRole(ctx, "alice", "ROLE_ADMIN"); err != nil {
		t.Fatalf("RevokeRole unheld: %v", err)
	}
	if users.saves != saves {
		t.Fatalf("no-op revocation must not persist")
	}
}

func TestAccessService_NotFound(t *testing.T) {
	ctx := context.Background()
	users, roles := seedAccessFixture(t)
	svc := NewAccessService(users, roles, zerolog.Nop())

	if _, err := svc.AssignRole(ctx, "ghost", "ROLE_ADMIN"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.AssignRole(ctx, "alice", "ROLE_MISSING"); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
	if _, err := svc.PermissionCodes(ctx, "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("PermissionCodes: expected ErrUserNotFound, got %v", err)
	}
}

// The predicates deliberately differ from PermissionCodes for unknown users:
// they answer false instead of failing.
func TestAccessService_PredicatesFalseForUnknownUser(t *testing.T) {
	ctx := context.Background()
	users, roles := seedAccessFixture(t)
	svc := NewAccessService(users, roles, zerolog.Nop())

	has, err := svc.HasRole(ctx, "ghost", "ROLE_ADMIN")
	if err != nil || has {
		t.Fatalf("HasRole on unknown user: expected false, nil; got %v, %v", has, err)
	}
	has, err = svc.HasPermission(ctx, "ghost", "user:read")
	if err != nil || has {
		t.Fatalf("HasPermission on unknown user: expected false, nil; got %v, %v", has, err)
	}
}

func TestAccessService_HasPermission(t *testing.T) {
	ctx := context.Background()
	users, roles := seedAccessFixture(t)
	svc := NewAccessService(users, roles, zerolog.Nop())

	has, err := svc.HasPermission(ctx, "alice", "user:read")
	if err != nil || !has {
		t.Fatalf("expected user:read via ROLE_USER, got %v, %v", has, err)
	}
	has, _ = svc.HasPermission(ctx, "alice", "user:write")
	if has {
		t.Fatalf("user:write is not granted yet")
	}
}
