package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/poetracikal/backend/internal/logging"
	"github.com/poetracikal/backend/internal/models"
	"github.com/poetracikal/backend/internal/service"
)

const userContextKey = "user"

// bearerToken pulls the token from the Authorization header, falling back to
// the ?token= query parameter older clients still send.
func bearerToken(c echo.Context) string {
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	if after, ok := strings.CutPrefix(h, "Bearer "); ok {
		return after
	}
	return c.QueryParam("token")
}

// RequireAdmin resolves the bearer token and rejects the request before the
// handler runs unless it belongs to an admin. Missing, unknown and
// non-admin tokens all answer 403.
func RequireAdmin(sessions *service.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			l := logging.FromContext(ctx).With("middleware", "require_admin")

			user, err := sessions.ResolveToken(ctx, bearerToken(c))
			if err != nil {
				if errors.Is(err, service.ErrUnauthenticated) {
					l.Warn("admin_check_failed", "status", 403, "reason", "missing or invalid token")
					return echo.NewHTTPError(http.StatusForbidden, "admin access required")
				}
				l.Error("admin_check_failed", "status", 500, "reason", "token lookup error", "error", err)
				return echo.NewHTTPError(http.StatusInternalServerError, "cannot resolve token")
			}

			if user.Role != models.RoleAdmin {
				l.Warn("admin_check_failed", "status", 403, "reason", "role is not admin", "role", user.Role)
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

func currentUser(c echo.Context) *models.User {
	if u, ok := c.Get(userContextKey).(*models.User); ok {
		return u
	}
	return nil
}
