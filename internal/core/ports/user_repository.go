package ports

import (
	"context"

	"github.com/jobhive/backend/internal/core/domain"
)

// UserRepository is the credential and account store. Uniqueness of the
// email identity is enforced by the store itself; a racing Create for the
// same email fails with domain.ErrUserExists for the loser.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)

	AddSavedJob(ctx context.Context, email, jobID string) error
	RemoveSavedJob(ctx context.Context, email, jobID string) error
}
