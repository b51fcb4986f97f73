package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jobhive/backend/internal/core/domain"
	"github.com/jobhive/backend/internal/core/ports"
)

// AdminService implements platform moderation.
type AdminService struct {
	users  ports.UserRepository
	jobs   ports.JobRepository
	apps   ports.ApplicationRepository
	logger zerolog.Logger
}

func NewAdminService(users ports.UserRepository, jobs ports.JobRepository, apps ports.ApplicationRepository, logger zerolog.Logger) *AdminService {
	return &AdminService{users: users, jobs: jobs, apps: apps, logger: logger}
}

func (s *AdminService) Stats(ctx context.Context) (*ports.PlatformStats, error) {
	userCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	jobCount, err := s.jobs.Count(ctx)
	if err != nil {
		return nil, err
	}
	appCount, err := s.apps.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &ports.PlatformStats{
		TotalUsers:        userCount,
		TotalJobs:         jobCount,
		TotalApplications: appCount,
	}, nil
}

func (s *AdminService) Users(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted by admin")
	return nil
}

func (s *AdminService) Jobs(ctx context.Context) ([]*domain.Job, error) {
	return s.jobs.All(ctx)
}

func (s *AdminService) DeleteJob(ctx context.Context, id string) error {
	if err := s.jobs.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("job_id", id).Msg("job deleted by admin")
	return nil
}
