package domain

import (
	"fmt"
	"time"
)

// DefaultRoleCode is granted to users who register without requesting roles.
const DefaultRoleCode = "ROLE_USER"

// AdminRoleCode guards the management API surface.
const AdminRoleCode = "ROLE_ADMIN"

// Role groups permissions under a unique code. Identity is the code: two Role
// values with the same code are the same role regardless of other fields, so
// membership sets dedupe correctly across instances loaded by different queries.
type Role struct {
	ID          int64        `json:"id"`
	Code        string       `json:"code"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Enabled     bool         `json:"enabled"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Permissions []Permission `json:"permissions,omitempty"`
}

// NewRole creates an enabled role with no permissions. Name and code are required.
func NewRole(name, code, description string) (*Role, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: role name", ErrFieldRequired)
	}
	if code == "" {
		return nil, fmt.Errorf("%w: role code", ErrFieldRequired)
	}
	now := time.Now().UTC()
	return &Role{
		Code:        code,
		Name:        name,
		Description: description,
		Enabled:     true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update replaces the descriptive fields. Name remains required; the code is
// the role's identity and never changes.
func (r *Role) Update(name, description string) error {
	if name == "" {
		return fmt.Errorf("%w: role name", ErrFieldRequired)
	}
	r.Name = name
	r.Description = description
	r.UpdatedAt = time.Now().UTC()
	return nil
}

// Enable activates the role. Idempotent.
func (r *Role) Enable() {
	r.Enabled = true
	r.UpdatedAt = time.Now().UTC()
}

// Disable deactivates the role. Idempotent.
func (r *Role) Disable() {
	r.Enabled = false
	r.UpdatedAt = time.Now().UTC()
}

// AddPermission grants a permission to the role. Granting one the role already
// holds (same code) is a no-op; a nil permission is an invariant violation.
func (r *Role) AddPermission(p *Permission) error {
	if p == nil {
		return fmt.Errorf("%w: permission", ErrNilReference)
	}
	if r.HasPermission(p.Code) {
		return nil
	}
	r.Permissions = append(r.Permissions, *p)
	r.UpdatedAt = time.Now().UTC()
	return nil
}

// RemovePermission revokes a permission by code equality. Revoking one the
// role does not hold is a no-op.
func (r *Role) RemovePermission(p *Permission) error {
	if p == nil {
		return fmt.Errorf("%w: permission", ErrNilReference)
	}
	for i, held := range r.Permissions {
		if held.Code == p.Code {
			r.Permissions = append(r.Permissions[:i], r.Permissions[i+1:]...)
			r.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return nil
}

// HasPermission reports whether the role holds a permission with the given code.
func (r *Role) HasPermission(code string) bool {
	for _, p := range r.Permissions {
		if p.Code == code {
			return true
		}
	}
	return false
}

// Equal reports identity by code alone.
func (r Role) Equal(other Role) bool {
	return r.Code == other.Code
}
