package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shiftboard/jobboard-api/internal/core/domain"
)

// AccountChecker confirms that a token subject still has an account.
type AccountChecker interface {
	AccountExists(ctx context.Context, id domain.Identity) (bool, error)
}

// RequireRole enforces role-based access control. It must run after
// Authenticate. With no roles listed any authenticated role is accepted.
// Tokens of deleted accounts are rejected even before they expire.
func RequireRole(accounts AccountChecker, roles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := IdentityFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if len(allowed) > 0 {
				if _, ok := allowed[id.Role]; !ok {
					return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
				}
			}

			exists, err := accounts.AccountExists(c.Request().Context(), id)
			if err != nil {
				return err
			}
			if !exists {
				return echo.NewHTTPError(http.StatusUnauthorized, "account no longer exists")
			}
			return next(c)
		}
	}
}
