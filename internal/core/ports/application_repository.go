package ports

import (
	"context"

	"github.com/jobhive/backend/internal/core/domain"
)

// ApplicationRepository defines persistence operations for applications.
// The store enforces at most one application per (job, applicant) pair;
// a duplicate Create fails with domain.ErrAlreadyApplied.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	FindByApplicant(ctx context.Context, email string) ([]*domain.Application, error)
	FindByJob(ctx context.Context, jobID string) ([]*domain.Application, error)
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error
	Count(ctx context.Context) (int64, error)
}
