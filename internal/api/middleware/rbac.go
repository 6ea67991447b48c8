package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zhourui392/cursor-ddd-test/internal/core/ports"
)

// RequireRole allows the request through only when the authenticated user
// holds at least one of the given role codes. It must run after Auth.
func RequireRole(access ports.AccessService, roleCodes ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			username, ok := c.Get(ContextKeyUsername).(string)
			if !ok || username == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}

			for _, code := range roleCodes {
				held, err := access.HasRole(c.Request().Context(), username, code)
				if err != nil {
					return err
				}
				if held {
					return next(c)
				}
			}

			return echo.NewHTTPError(http.StatusForbidden, "forbidden")
		}
	}
}

// RequirePermission allows the request through only when the authenticated
// user holds the given permission code through any of their roles. It must
// run after Auth.
func RequirePermission(access ports.AccessService, permissionCode string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			username, ok := c.Get(ContextKeyUsername).(string)
			if !ok || username == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}

			held, err := access.HasPermission(c.Request().Context(), username, permissionCode)
			if err != nil {
				return err
			}
			if !held {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}

			return next(c)
		}
	}
}
