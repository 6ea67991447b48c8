package domain

import (
	"fmt"
	"time"
)

// User is the aggregate root for identity. It exclusively owns its role
// membership; the Role values it references are shared, not owned — deleting a
// user never cascades into roles or permissions.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Nickname     string    `json:"nickname,omitempty"`
	Email        Email     `json:"-"`
	Phone        Phone     `json:"-"`
	Enabled      bool      `json:"enabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	LastLoginAt  time.Time `json:"last_login_at,omitempty"`
	Roles        []Role    `json:"roles,omitempty"`
}

// NewUser creates an enabled user. Username and the password hash are
// required; email and phone are optional but must be well-formed when present.
func NewUser(username, passwordHash, nickname, email, phone string) (*User, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username", ErrFieldRequired)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("%w: password", ErrFieldRequired)
	}
	mail, err := NewEmail(email)
	if err != nil {
		return nil, err
	}
	tel, err := NewPhone(phone)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		Nickname:     nickname,
		Email:        mail,
		Phone:        tel,
		Enabled:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// UpdateProfile replaces the mutable descriptive fields. Email and phone are
// re-validated; the username is fixed for the lifetime of the account.
func (u *User) UpdateProfile(nickname, email, phone string) error {
	mail, err := NewEmail(email)
	if err != nil {
		return err
	}
	tel, err := NewPhone(phone)
	if err != nil {
		return err
	}
	u.Nickname = nickname
	u.Email = mail
	u.Phone = tel
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// ChangePassword replaces the stored credential hash.
func (u *User) ChangePassword(newHash string) error {
	if newHash == "" {
		return fmt.Errorf("%w: password", ErrFieldRequired)
	}
	u.PasswordHash = newHash
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// Enable activates the account. Idempotent.
func (u *User) Enable() {
	u.Enabled = true
	u.UpdatedAt = time.Now().UTC()
}

// Disable deactivates the account. Idempotent.
func (u *User) Disable() {
	u.Enabled = false
	u.UpdatedAt = time.Now().UTC()
}

// RecordLogin stamps the last-login instant. Login is not a profile mutation,
// so UpdatedAt is left alone.
func (u *User) RecordLogin() {
	u.LastLoginAt = time.Now().UTC()
}

// AddRole grants a role. Granting a role the user already holds (same code) is
// a no-op; a nil role is an invariant violation.
func (u *User) AddRole(r *Role) error {
	if r == nil {
		return fmt.Errorf("%w: role", ErrNilReference)
	}
	if u.HasRole(r.Code) {
		return nil
	}
	u.Roles = append(u.Roles, *r)
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// RemoveRole revokes a role by code equality. Revoking a role the user does
// not hold is a no-op.
func (u *User) RemoveRole(r *Role) error {
	if r == nil {
		return fmt.Errorf("%w: role", ErrNilReference)
	}
	for i, held := range u.Roles {
		if held.Code == r.Code {
			u.Roles = append(u.Roles[:i], u.Roles[i+1:]...)
			u.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return nil
}

// HasRole reports whether the user holds a role with the given code.
func (u *User) HasRole(code string) bool {
	for _, r := range u.Roles {
		if r.Code == code {
			return true
		}
	}
	return false
}

// PermissionCodes returns the deduplicated union of permission codes across
// all of the user's roles.
func (u *User) PermissionCodes() []string {
	seen := make(map[string]struct{})
	var codes []string
	for _, r := range u.Roles {
		for _, p := range r.Permissions {
			if _, ok := seen[p.Code]; ok {
				continue
			}
			seen[p.Code] = struct{}{}
			codes = append(codes, p.Code)
		}
	}
	return codes
}
