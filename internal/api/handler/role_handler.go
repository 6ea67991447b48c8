package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zhourui392/cursor-ddd-test/internal/core/ports"
)

// RoleHandler handles role administration and Role↔Permission membership.
type RoleHandler struct {
	roleService ports.RoleService
}

func NewRoleHandler(roleService ports.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

// Create registers a new role.
//
// @Summary      Create a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRoleRequest  true  "Role details"
// @Success      201   {object}  roleResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	var req createRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := h.roleService.Create(c.Request().Context(), req.Name, req.Code, req.Description)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toRoleResponse(role))
}

// List returns all roles.
//
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  roleResponse
// @Router       /api/roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.roleService.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toRoleListResponse(roles))
}

// Get returns a single role by code.
//
// @Summary      Get a role
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        code  path      string  true  "Role code"
// @Success      200   {object}  roleResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/roles/{code} [get]
func (h *RoleHandler) Get(c echo.Context) error {
	role, err := h.roleService.GetByCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toRoleResponse(role))
}

// Update changes a role's name and description. The code is immutable.
//
// @Summary      Update a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        code  path      string             true  "Role code"
// @Param        body  body      updateRoleRequest  true  "Role fields"
// @Success      200   {object}  roleResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/roles/{code} [put]
func (h *RoleHandler) Update(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := h.roleService.Update(c.Request().Context(), c.Param("code"), req.Name, req.Description)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toRoleResponse(role))
}

// Delete removes a role. Users holding the role simply lose it.
//
// @Summary      Delete a role
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        code  path  string  true  "Role code"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/roles/{code} [delete]
func (h *RoleHandler) Delete(c echo.Context) error {
	if err := h.roleService.Delete(c.Request().Context(), c.Param("code")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// GrantPermission adds a permission to a role.
//
// @Summary      Grant a permission to a role
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        code            path      string  true  "Role code"
// @Param        permissionCode  path      string  true  "Permission code"
// @Success      200             {object}  roleResponse
// @Failure      404             {object}  errorResponse
// @Router       /api/roles/{code}/permissions/{permissionCode} [post]
func (h *RoleHandler) GrantPermission(c echo.Context) error {
	role, err := h.roleService.GrantPermission(c.Request().Context(), c.Param("code"), c.Param("permissionCode"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toRoleResponse(role))
}

// RevokePermission removes a permission from a role.
//
// @Summary      Revoke a permission from a role
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        code            path      string  true  "Role code"
// @Param        permissionCode  path      string  true  "Permission code"
// @Success      200             {object}  roleResponse
// @Failure      404             {object}  errorResponse
// @Router       /api/roles/{code}/permissions/{permissionCode} [delete]
func (h *RoleHandler) RevokePermission(c echo.Context) error {
	role, err := h.roleService.RevokePermission(c.Request().Context(), c.Param("code"), c.Param("permissionCode"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toRoleResponse(role))
}
