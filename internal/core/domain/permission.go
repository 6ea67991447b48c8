package domain

import (
	"fmt"
	"time"
)

// Permission is a single authorization capability identified by its code.
// Two Permission values with the same code are the same permission.
type Permission struct {
	ID          int64     `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Enabled     bool      `json:"enabled"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewPermission creates an enabled permission. Name and code are required.
func NewPermission(name, code, description string) (*Permission, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: permission name", ErrFieldRequired)
	}
	if code == "" {
		return nil, fmt.Errorf("%w: permission code", ErrFieldRequired)
	}
	now := time.Now().UTC()
	return &Permission{
		Code:        code,
		Name:        name,
		Description: description,
		Enabled:     true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update replaces the descriptive fields. Name remains required.
func (p *Permission) Update(name, description string) error {
	if name == "" {
		return fmt.Errorf("%w: permission name", ErrFieldRequired)
	}
	p.Name = name
	p.Description = description
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// Enable activates the permission. Idempotent.
func (p *Permission) Enable() {
	p.Enabled = true
	p.UpdatedAt = time.Now().UTC()
}

// Disable deactivates the permission. Idempotent.
func (p *Permission) Disable() {
	p.Enabled = false
	p.UpdatedAt = time.Now().UTC()
}

// Equal reports identity by code alone; id and descriptive fields are ignored.
func (p Permission) Equal(other Permission) bool {
	return p.Code == other.Code
}
