package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/eventsphere/internal/session"
	"github.com/iliyamo/eventsphere/internal/utils"
)

// SessionAuth validates the Bearer token and stores the decoded session in
// the request context.  Requests without a valid token get 401.
func SessionAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c.Request())
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authentication required"})
			}
			s, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid or expired session"})
			}
			req := c.Request()
			c.SetRequest(req.WithContext(session.NewContext(req.Context(), s)))
			return next(c)
		}
	}
}

func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	return raw, raw != ""
}

// sessionAccountID returns the caller's account id, or "anon".
func sessionAccountID(c echo.Context) string {
	if s, ok := session.FromContext(c.Request().Context()); ok && s.AccountID != "" {
		return s.AccountID
	}
	return "anon"
}
