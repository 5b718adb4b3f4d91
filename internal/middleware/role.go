package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/eventsphere/internal/session"
)

// RequireRole aborts with 403 unless the session placed by SessionAuth
// carries one of roles.  It must run after SessionAuth.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s, ok := session.FromContext(c.Request().Context())
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authentication required"})
			}
			if !allowed[s.Role] {
				return c.JSON(http.StatusForbidden, echo.Map{"message": "Forbidden"})
			}
			return next(c)
		}
	}
}
