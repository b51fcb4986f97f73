package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobhive/backend/internal/api/middleware"
	"github.com/jobhive/backend/internal/core/domain"
)

// ctxIdentity extracts the identity attached by the resolver middleware.
// Handlers behind a gate can assume it exists; absence means the route
// was wired without its gate, so fail closed with 401 rather than serve
// an unauthenticated request.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
