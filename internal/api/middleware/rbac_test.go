package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/jobhive/backend/internal/core/domain"
)

// invoke runs a gate middleware with an optional identity attached and
// returns the resulting status code.
func invoke(t *testing.T, gate echo.MiddlewareFunc, id *domain.Identity) int {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != nil {
		SetIdentity(c, *id)
	}

	h := gate(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	err := h(c)
	if err == nil {
		return rec.Code
	}
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("unexpected error type: %v", err)
	}
	return he.Code
}

func TestRequireAuthenticated(t *testing.T) {
	gate := RequireAuthenticated()

	if code := invoke(t, gate, nil); code != http.StatusUnauthorized {
		t.Fatalf("anonymous: expected 401, got %d", code)
	}
	for _, role := range []domain.Role{domain.RoleApplicant, domain.RoleRecruiter, domain.RoleAdmin} {
		id := domain.Identity{Subject: "u@example.com", Role: role}
		if code := invoke(t, gate, &id); code != http.StatusOK {
			t.Fatalf("role %s: expected 200, got %d", role, code)
		}
	}
}

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		name    string
		allowed []domain.Role
		role    domain.Role
		anon    bool
		want    int
	}{
		{name: "anonymous", allowed: []domain.Role{domain.RoleAdmin}, anon: true, want: http.StatusUnauthorized},
		{name: "wrong role", allowed: []domain.Role{domain.RoleAdmin}, role: domain.RoleApplicant, want: http.StatusForbidden},
		{name: "matching role", allowed: []domain.Role{domain.RoleAdmin}, role: domain.RoleAdmin, want: http.StatusOK},
		{name: "one of several", allowed: []domain.Role{domain.RoleApplicant, domain.RoleRecruiter}, role: domain.RoleRecruiter, want: http.StatusOK},
		{name: "outside the set", allowed: []domain.Role{domain.RoleApplicant, domain.RoleRecruiter}, role: domain.RoleAdmin, want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := RequireRoles(tt.allowed...)
			var id *domain.Identity
			if !tt.anon {
				id = &domain.Identity{Subject: "u@example.com", Role: tt.role}
			}
			if code := invoke(t, gate, id); code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, code)
			}
		})
	}
}
