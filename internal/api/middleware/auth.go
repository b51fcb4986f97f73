package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jobhive/backend/internal/auth"
	"github.com/jobhive/backend/internal/core/domain"
	"github.com/jobhive/backend/internal/core/ports"
)

// identityKey is the echo.Context key the resolved identity is stored
// under. The context is request-scoped, so the identity can never leak
// into a concurrently processed request.
const identityKey = "auth.identity"

// ResolveIdentity extracts and verifies the bearer token on each request
// and attaches the resulting identity to the request scope.
//
// Resolution fails open: a missing, malformed, expired or badly signed
// token leaves the request anonymous and the access decision to the
// per-route gates. The subject is re-resolved against the user store so a
// token for a deleted account resolves to anonymous; the role is taken
// from the token's own verified claims, not refreshed from storage.
//
// Resolution is idempotent within a request: an already attached identity
// is left untouched.
func ResolveIdentity(codec *auth.Codec, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := c.Get(identityKey).(domain.Identity); ok {
				return next(c)
			}

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			claims, err := codec.ParseAndVerify(parts[1])
			if err != nil {
				return next(c)
			}

			user, err := users.FindByEmail(c.Request().Context(), claims.Subject)
			if err != nil {
				return next(c)
			}
			if !codec.IsValid(parts[1], user.Email) {
				return next(c)
			}

			c.Set(identityKey, domain.Identity{
				Subject: user.Email,
				Role:    claims.Roles[0],
			})
			return next(c)
		}
	}
}

// IdentityFrom returns the identity attached by ResolveIdentity, if any.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	id, ok := c.Get(identityKey).(domain.Identity)
	return id, ok
}

// SetIdentity attaches an identity directly. Intended for tests.
func SetIdentity(c echo.Context, id domain.Identity) {
	c.Set(identityKey, id)
}
