package ports

import (
	"context"

	"github.com/jobhive/backend/internal/core/domain"
)

// JobInput carries the data needed to create a posting.
type JobInput struct {
	Title        string
	Description  string
	Requirements string
	Location     string
	Salary       float64
	Type         domain.JobType
}

// JobPage is one page of listing results.
type JobPage struct {
	Items      []*domain.Job
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// JobService defines use-case operations for job postings.
type JobService interface {
	List(ctx context.Context, filter ListJobsFilter) (*JobPage, error)
	Get(ctx context.Context, id string) (*domain.Job, error)
	Create(ctx context.Context, input JobInput, recruiterEmail string) (*domain.Job, error)
	ByRecruiter(ctx context.Context, email string) ([]*domain.Job, error)
	// ToggleSaved flips the saved flag for a job on the user's account and
	// reports the resulting state (true = now saved).
	ToggleSaved(ctx context.Context, email, jobID string) (bool, error)
	Saved(ctx context.Context, email string) ([]*domain.Job, error)
}
