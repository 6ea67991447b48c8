package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zhourui392/cursor-ddd-test/internal/api/middleware"
)

// ctxUsername extracts the authenticated username injected by the Auth
// middleware. An empty value means the middleware did not run on this route,
// which is a wiring mistake — reject with 401 rather than proceed anonymous.
func ctxUsername(c echo.Context) (string, error) {
	username, _ := c.Get(middleware.ContextKeyUsername).(string)
	if username == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return username, nil
}

// ctxToken extracts the raw bearer token captured by the Auth middleware.
func ctxToken(c echo.Context) (string, error) {
	token, _ := c.Get(middleware.ContextKeyToken).(string)
	if token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return token, nil
}
