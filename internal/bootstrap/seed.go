// Package bootstrap prepares the stores a fresh deployment needs before the
// service can accept traffic.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/zhourui392/cursor-ddd-test/internal/core/domain"
	"github.com/zhourui392/cursor-ddd-test/internal/core/ports"
)

// SeedDefaults creates the built-in roles when they are missing. Registration
// grants every new user the default role, so the service cannot run without
// it. Existing roles are left untouched.
func SeedDefaults(ctx context.Context, roles ports.RoleRepository, log zerolog.Logger) error {
	defaults := []struct {
		name, code, description string
	}{
		{"User", domain.DefaultRoleCode, "Default role for registered users"},
		{"Administrator", domain.AdminRoleCode, "Full administrative access"},
	}

	for _, d := range defaults {
		exists, err := roles.ExistsByCode(ctx, d.code)
		if err != nil {
			return fmt.Errorf("check role %s: %w", d.code, err)
		}
		if exists {
			continue
		}

		role, err := domain.NewRole(d.name, d.code, d.description)
		if err != nil {
			return fmt.Errorf("build role %s: %w", d.code, err)
		}
		if _, err := roles.Save(ctx, role); err != nil {
			return fmt.Errorf("save role %s: %w", d.code, err)
		}
		log.Info().Str("code", d.code).Msg("seeded role")
	}

	return nil
}
