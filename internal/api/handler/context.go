package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shiftboard/jobboard-api/internal/api/middleware"
	"github.com/shiftboard/jobboard-api/internal/core/domain"
)

// caller extracts the identity injected by the Authenticate middleware and
// fails fast with 401 when a route was wired without it.
func caller(c echo.Context) (domain.Identity, error) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}

// bindValid decodes the JSON body into req and runs the registered validator.
func bindValid(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domain.NewValidationError("invalid payload")
	}
	return c.Validate(req)
}

type messageResponse struct {
	Message string `json:"message"`
}
