package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/zhourui392/cursor-ddd-test/internal/api/metrics"
	"github.com/zhourui392/cursor-ddd-test/internal/core/domain"
	"github.com/zhourui392/cursor-ddd-test/internal/core/ports"
)

const (
	// ContextKeyUsername holds the authenticated subject in the echo context.
	ContextKeyUsername = "username"
	// ContextKeyToken holds the raw bearer token, needed by logout.
	ContextKeyToken = "token"
)

// Auth validates the bearer token and injects the authenticated username
// into the request context. Verification covers signature, expiry and the
// revocation blacklist.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := extractBearer(c)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return err
			}

			username, err := tokens.Verify(c.Request().Context(), raw)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues(verifyOutcome(err)).Inc()
				return err
			}
			metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()

			c.Set(ContextKeyUsername, username)
			c.Set(ContextKeyToken, raw)

			return next(c)
		}
	}
}

func verifyOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenRevoked):
		return "revoked"
	default:
		return "invalid"
	}
}

func extractBearer(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}

	return parts[1], nil
}
