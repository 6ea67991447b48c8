package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zhourui392/cursor-ddd-test/internal/api/metrics"
	"github.com/zhourui392/cursor-ddd-test/internal/core/ports"
)

// UserHandler handles user administration and the cross-aggregate role
// membership operations.
type UserHandler struct {
	userService   ports.UserService
	accessService ports.AccessService
}

func NewUserHandler(userService ports.UserService, accessService ports.AccessService) *UserHandler {
	return &UserHandler{userService: userService, accessService: accessService}
}

// Me returns the authenticated user's own profile.
//
// @Summary      Get the current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetByUsername(c.Request().Context(), username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// List returns all users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserListResponse(users))
}

// Get returns a single user by username.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  userResponse
// @Failure      404       {object}  errorResponse
// @Router       /api/users/{username} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.GetByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Update replaces a user's mutable profile fields.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string             true  "Username"
// @Param        body      body      updateUserRequest  true  "Profile fields"
// @Success      200       {object}  userResponse
// @Failure      400       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /api/users/{username} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	ctx := c.Request().Context()
	user, err := h.userService.GetByUsername(ctx, c.Param("username"))
	if err != nil {
		return err
	}

	updated, err := h.userService.Update(ctx, user.ID, ports.UpdateUserInput{
		Nickname: req.Nickname,
		Email:    req.Email,
		Phone:    req.Phone,
		Enabled:  req.Enabled,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(updated))
}

// Delete removes a user.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path  string  true  "Username"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{username} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	user, err := h.userService.GetByUsername(ctx, c.Param("username"))
	if err != nil {
		return err
	}

	if err := h.userService.Delete(ctx, user.ID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// AssignRole grants a role to a user.
//
// @Summary      Assign a role to a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Param        code      path      string  true  "Role code"
// @Success      200       {object}  userResponse
// @Failure      404       {object}  errorResponse
// @Router       /api/users/{username}/roles/{code} [post]
func (h *UserHandler) AssignRole(c echo.Context) error {
	user, err := h.accessService.AssignRole(c.Request().Context(), c.Param("username"), c.Param("code"))
	if err != nil {
		return err
	}
	metrics.RoleAssignmentsTotal.WithLabelValues("assign").Inc()

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// RevokeRole removes a role from a user.
//
// @Summary      Revoke a role from a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Param        code      path      string  true  "Role code"
// @Success      200       {object}  userResponse
// @Failure      404       {object}  errorResponse
// @Router       /api/users/{username}/roles/{code} [delete]
func (h *UserHandler) RevokeRole(c echo.Context) error {
	user, err := h.accessService.RevokeRole(c.Request().Context(), c.Param("username"), c.Param("code"))
	if err != nil {
		return err
	}
	metrics.RoleAssignmentsTotal.WithLabelValues("revoke").Inc()

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Permissions returns the union of permission codes a user holds through
// all of their roles.
//
// @Summary      List a user's effective permissions
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  permissionCodesResponse
// @Failure      404       {object}  errorResponse
// @Router       /api/users/{username}/permissions [get]
func (h *UserHandler) Permissions(c echo.Context) error {
	username := c.Param("username")
	codes, err := h.accessService.PermissionCodes(c.Request().Context(), username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, permissionCodesResponse{
		Username:    username,
		Permissions: codes,
	})
}
