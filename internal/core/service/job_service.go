package service

import (
	"context"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobhive/backend/internal/api/metrics"
	"github.com/jobhive/backend/internal/core/domain"
	"github.com/jobhive/backend/internal/core/ports"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// JobService implements use cases around job postings.
type JobService struct {
	jobs   ports.JobRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewJobService(jobs ports.JobRepository, users ports.UserRepository, logger zerolog.Logger) *JobService {
	return &JobService{jobs: jobs, users: users, logger: logger}
}

// List returns a filtered, paginated page of postings, newest first.
func (s *JobService) List(ctx context.Context, filter ports.ListJobsFilter) (*ports.JobPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}

	items, total, err := s.jobs.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &ports.JobPage{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return s.jobs.FindByID(ctx, id)
}

// Create persists a posting on behalf of recruiterEmail.
func (s *JobService) Create(ctx context.Context, input ports.JobInput, recruiterEmail string) (*domain.Job, error) {
	recruiter, err := s.users.FindByEmail(ctx, recruiterEmail)
	if err != nil {
		return nil, err
	}

	job := &domain.Job{
		Title:         input.Title,
		Description:   input.Description,
		Requirements:  input.Requirements,
		Location:      input.Location,
		Salary:        input.Salary,
		Type:          input.Type,
		PostedByEmail: recruiter.Email,
		PostedByName:  recruiter.Name,
		PostedAt:      time.Now().UTC(),
	}

	created, err := s.jobs.Create(ctx, job)
	if err != nil {
		s.logger.Error().Err(err).Str("recruiter", recruiterEmail).Msg("failed to create job")
		return nil, err
	}

	metrics.JobsCreatedTotal.WithLabelValues(string(created.Type)).Inc()
	s.logger.Info().Str("job_id", created.ID).Str("recruiter", recruiterEmail).Msg("job created")
	return created, nil
}

func (s *JobService) ByRecruiter(ctx context.Context, email string) ([]*domain.Job, error) {
	return s.jobs.FindByRecruiter(ctx, email)
}

// ToggleSaved flips the saved flag for jobID on the user's account.
func (s *JobService) ToggleSaved(ctx context.Context, email, jobID string) (bool, error) {
	if _, err := s.jobs.FindByID(ctx, jobID); err != nil {
		return false, err
	}
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}

	if slices.Contains(user.SavedJobIDs, jobID) {
		return false, s.users.RemoveSavedJob(ctx, user.Email, jobID)
	}
	return true, s.users.AddSavedJob(ctx, user.Email, jobID)
}

// Saved returns the user's saved postings. Jobs deleted since they were
// saved are silently dropped from the result.
func (s *JobService) Saved(ctx context.Context, email string) ([]*domain.Job, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(user.SavedJobIDs) == 0 {
		return []*domain.Job{}, nil
	}
	return s.jobs.FindByIDs(ctx, user.SavedJobIDs)
}
