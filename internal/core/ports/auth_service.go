package ports

import (
	"context"

	"github.com/jobhive/backend/internal/core/domain"
)

// RegisterInput carries a new account request.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// AuthService implements registration and login. Login returns the signed
// bearer token on success and never distinguishes an unknown identity
// from a wrong password in its error.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// LoginThrottle limits repeated failed logins per identity. Implementations
// fail open: when the backing store is unavailable, Allow returns true.
type LoginThrottle interface {
	Allow(ctx context.Context, identity string) bool
	RecordFailure(ctx context.Context, identity string)
	Reset(ctx context.Context, identity string)
}
