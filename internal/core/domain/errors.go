package domain

import "errors"

// Value object validation failures.
var ErrInvalidEmail = errors.New("invalid email format")
var ErrInvalidPhone = errors.New("invalid phone format")

// Aggregate invariant violations.
var ErrFieldRequired = errors.New("required field missing")
var ErrNilReference = errors.New("nil membership reference")

// Uniqueness conflicts.
var ErrUserExists = errors.New("username already exists")
var ErrRoleExists = errors.New("role code already exists")
var ErrPermissionExists = errors.New("permission code already exists")

// Missing aggregates.
var ErrUserNotFound = errors.New("user not found")
var ErrRoleNotFound = errors.New("role not found")
var ErrPermissionNotFound = errors.New("permission not found")

// Authentication outcomes. ErrInvalidCredentials deliberately covers both an
// unknown username and a wrong password so callers cannot enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrUserDisabled = errors.New("user account is disabled")

// Token verification outcomes.
var ErrTokenInvalid = errors.New("token is invalid")
var ErrTokenExpired = errors.New("token has expired")
var ErrTokenRevoked = errors.New("token has been revoked")
