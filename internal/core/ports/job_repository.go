package ports

import (
	"context"

	"github.com/jobhive/backend/internal/core/domain"
)

// ListJobsFilter carries all query parameters for the public job listing.
type ListJobsFilter struct {
	Keyword   string  // optional: partial match on title or description
	Location  string  // optional: partial match on location
	MinSalary float64 // optional: salary >= MinSalary
	Type      string  // optional: job type (REMOTE, HYBRID, ONSITE)
	Page      int     // 1-based
	Limit     int     // max rows per page (capped at 100 by the service)
}

// JobRepository defines persistence operations for job postings.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Job, error)
	FindByRecruiter(ctx context.Context, email string) ([]*domain.Job, error)
	// List returns a page of jobs matching filter and the total match count,
	// newest first.
	List(ctx context.Context, filter ListJobsFilter) ([]*domain.Job, int64, error)
	// All returns every posting, newest first. Used by moderation.
	All(ctx context.Context) ([]*domain.Job, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
