package service

import (
	"context"
	"sync"
	"time"

	"github.com/zhourui392/cursor-ddd-test/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stub repositories and collaborators shared by the service tests.
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byUsername map[string]*domain.User
	nextID     int64
	saves      int
	findErr    error
	saveErr    error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byUsername: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Roles = append([]domain.Role(nil), u.Roles...)
	return &clone
}

func (r *stubUserRepo) Save(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.saveErr != nil {
		return nil, r.saveErr
	}
	r.saves++
	clone := cloneUser(user)
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	}
	r.byUsername[clone.Username] = clone
	return cloneUser(clone), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.byUsername {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return cloneUser(r.byUsername[username]), nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	users := make([]*domain.User, 0, len(r.byUsername))
	for _, u := range r.byUsername {
		users = append(users, cloneUser(u))
	}
	return users, nil
}

func (r *stubUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := r.byUsername[username]
	return ok, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	for name, u := range r.byUsername {
		if u.ID == id {
			delete(r.byUsername, name)
			return nil
		}
	}
	return nil
}

type stubRoleRepo struct {
	byCode map[string]*domain.Role
	nextID int64
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{byCode: make(map[string]*domain.Role)}
}

func cloneRole(r *domain.Role) *domain.Role {
	if r == nil {
		return nil
	}
	clone := *r
	clone.Permissions = append([]domain.Permission(nil), r.Permissions...)
	return &clone
}

func (r *stubRoleRepo) Save(_ context.Context, role *domain.Role) (*domain.Role, error) {
	clone := cloneRole(role)
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	}
	r.byCode[clone.Code] = clone
	return cloneRole(clone), nil
}

func (r *stubRoleRepo) FindByID(_ context.Context, id int64) (*domain.Role, error) {
	for _, role := range r.byCode {
		if role.ID == id {
			return cloneRole(role), nil
		}
	}
	return nil, nil
}

func (r *stubRoleRepo) FindByCode(_ context.Context, code string) (*domain.Role, error) {
	return cloneRole(r.byCode[code]), nil
}

func (r *stubRoleRepo) FindAll(_ context.Context) ([]*domain.Role, error) {
	roles := make([]*domain.Role, 0, len(r.byCode))
	for _, role := range r.byCode {
		roles = append(roles, cloneRole(role))
	}
	return roles, nil
}

func (r *stubRoleRepo) ExistsByCode(_ context.Context, code string) (bool, error) {
	_, ok := r.byCode[code]
	return ok, nil
}

func (r *stubRoleRepo) Delete(_ context.Context, id int64) error {
	for code, role := range r.byCode {
		if role.ID == id {
			delete(r.byCode, code)
			return nil
		}
	}
	return nil
}

type stubPermissionRepo struct {
	byCode map[string]*domain.Permission
	nextID int64
}

func newStubPermissionRepo() *stubPermissionRepo {
	return &stubPermissionRepo{byCode: make(map[string]*domain.Permission)}
}

func (r *stubPermissionRepo) Save(_ context.Context, p *domain.Permission) (*domain.Permission, error) {
	clone := *p
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	}
	r.byCode[clone.Code] = &clone
	saved := clone
	return &saved, nil
}

func (r *stubPermissionRepo) FindByID(_ context.Context, id int64) (*domain.Permission, error) {
	for _, p := range r.byCode {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubPermissionRepo) FindByCode(_ context.Context, code string) (*domain.Permission, error) {
	p, ok := r.byCode[code]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *stubPermissionRepo) FindAll(_ context.Context) ([]*domain.Permission, error) {
	perms := make([]*domain.Permission, 0, len(r.byCode))
	for _, p := range r.byCode {
		clone := *p
		perms = append(perms, &clone)
	}
	return perms, nil
}

func (r *stubPermissionRepo) ExistsByCode(_ context.Context, code string) (bool, error) {
	_, ok := r.byCode[code]
	return ok, nil
}

func (r *stubPermissionRepo) Delete(_ context.Context, id int64) error {
	for code, p := range r.byCode {
		if p.ID == id {
			delete(r.byCode, code)
			return nil
		}
	}
	return nil
}

// stubHasher is a deterministic stand-in for the bcrypt adapter.
type stubHasher struct{}

func (stubHasher) Hash(raw string) (string, error) { return "hashed:" + raw, nil }

func (stubHasher) Verify(raw, hash string) bool { return hash == "hashed:"+raw }

// stubBlacklist is an in-process revocation store with fault injection.
type stubBlacklist struct {
	mu        sync.Mutex
	revoked   map[string]time.Time
	revokeErr error
	lookupErr error
}

func newStubBlacklist() *stubBlacklist {
	return &stubBlacklist{revoked: make(map[string]time.Time)}
}

func (b *stubBlacklist) Revoke(_ context.Context, token string, ttl time.Duration) error {
	if b.revokeErr != nil {
		return b.revokeErr
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revoked[token] = time.Now().Add(ttl)
	return nil
}

func (b *stubBlacklist) IsRevoked(_ context.Context, token string) (bool, error) {
	if b.lookupErr != nil {
		return false, b.lookupErr
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	deadline, ok := b.revoked[token]
	return ok && time.Now().Before(deadline), nil
}
