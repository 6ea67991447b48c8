package handler

import (
	"github.com/zhourui392/cursor-ddd-test/internal/core/domain"
)

// --- Domain → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	roles := make([]roleResponse, 0, len(u.Roles))
	for i := range u.Roles {
		roles = append(roles, toRoleResponse(&u.Roles[i]))
	}

	resp := userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Nickname:  u.Nickname,
		Email:     u.Email.String(),
		Phone:     u.Phone.String(),
		Enabled:   u.Enabled,
		CreatedAt: u.CreatedAt.UTC(),
		UpdatedAt: u.UpdatedAt.UTC(),
		Roles:     roles,
	}
	if !u.LastLoginAt.IsZero() {
		t := u.LastLoginAt.UTC()
		resp.LastLoginAt = &t
	}
	return resp
}

func toUserListResponse(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

func toRoleResponse(r *domain.Role) roleResponse {
	perms := make([]permissionResponse, 0, len(r.Permissions))
	for i := range r.Permissions {
		perms = append(perms, toPermissionResponse(&r.Permissions[i]))
	}

	return roleResponse{
		ID:          r.ID,
		Code:        r.Code,
		Name:        r.Name,
		Description: r.Description,
		Enabled:     r.Enabled,
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
		Permissions: perms,
	}
}

func toRoleListResponse(roles []*domain.Role) []roleResponse {
	out := make([]roleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, toRoleResponse(r))
	}
	return out
}

func toPermissionResponse(p *domain.Permission) permissionResponse {
	return permissionResponse{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Enabled:     p.Enabled,
		CreatedAt:   p.CreatedAt.UTC(),
		UpdatedAt:   p.UpdatedAt.UTC(),
	}
}

func toPermissionListResponse(perms []*domain.Permission) []permissionResponse {
	out := make([]permissionResponse, 0, len(perms))
	for _, p := range perms {
		out = append(out, toPermissionResponse(p))
	}
	return out
}
