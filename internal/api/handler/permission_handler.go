package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zhourui392/cursor-ddd-test/internal/core/ports"
)

// PermissionHandler handles permission administration.
type PermissionHandler struct {
	permissionService ports.PermissionService
}

func NewPermissionHandler(permissionService ports.PermissionService) *PermissionHandler {
	return &PermissionHandler{permissionService: permissionService}
}

// Create registers a new permission.
//
// @Summary      Create a permission
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPermissionRequest  true  "Permission details"
// @Success      201   {object}  permissionResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/permissions [post]
func (h *PermissionHandler) Create(c echo.Context) error {
	var req createPermissionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	perm, err := h.permissionService.Create(c.Request().Context(), req.Name, req.Code, req.Description)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toPermissionResponse(perm))
}

// List returns all permissions.
//
// @Summary      List permissions
// @Tags         permissions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  permissionResponse
// @Router       /api/permissions [get]
func (h *PermissionHandler) List(c echo.Context) error {
	perms, err := h.permissionService.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPermissionListResponse(perms))
}

// Get returns a single permission by code.
//
// @Summary      Get a permission
// @Tags         permissions
// @Produce      json
// @Security     BearerAuth
// @Param        code  path      string  true  "Permission code"
// @Success      200   {object}  permissionResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/permissions/{code} [get]
func (h *PermissionHandler) Get(c echo.Context) error {
	perm, err := h.permissionService.GetByCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPermissionResponse(perm))
}

// Update changes a permission's name and description. The code is immutable.
//
// @Summary      Update a permission
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        code  path      string                   true  "Permission code"
// @Param        body  body      updatePermissionRequest  true  "Permission fields"
// @Success      200   {object}  permissionResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/permissions/{code} [put]
func (h *PermissionHandler) Update(c echo.Context) error {
	var req updatePermissionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	perm, err := h.permissionService.Update(c.Request().Context(), c.Param("code"), req.Name, req.Description)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPermissionResponse(perm))
}

// Delete removes a permission. Roles holding it simply lose it.
//
// @Summary      Delete a permission
// @Tags         permissions
// @Produce      json
// @Security     BearerAuth
// @Param        code  path  string  true  "Permission code"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/permissions/{code} [delete]
func (h *PermissionHandler) Delete(c echo.Context) error {
	if err := h.permissionService.Delete(c.Request().Context(), c.Param("code")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
