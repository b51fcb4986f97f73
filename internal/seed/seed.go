// Package seed populates the database with demo data for local
// development and evaluation environments.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobhive/backend/internal/auth"
	"github.com/jobhive/backend/internal/core/domain"
	"github.com/jobhive/backend/internal/core/ports"
)

const demoPassword = "password123"

// Run inserts demo accounts, a sample posting and one application.
// Idempotent: it is a no-op whenever any user already exists.
func Run(
	ctx context.Context,
	users ports.UserRepository,
	jobs ports.JobRepository,
	apps ports.ApplicationRepository,
	hasher *auth.Hasher,
	logger zerolog.Logger,
) error {
	count, err := users.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: count users: %w", err)
	}
	if count > 0 {
		logger.Debug().Msg("seed skipped, users already present")
		return nil
	}

	hash, err := hasher.Hash(demoPassword)
	if err != nil {
		return fmt.Errorf("seed: hash password: %w", err)
	}

	now := time.Now().UTC()
	accounts := []*domain.User{
		{Name: "Admin", Email: "admin@jobhive.local", PasswordHash: hash, Role: domain.RoleAdmin, CreatedAt: now, UpdatedAt: now},
		{Name: "Rita Recruiter", Email: "recruiter@jobhive.local", PasswordHash: hash, Role: domain.RoleRecruiter, CreatedAt: now, UpdatedAt: now},
		{Name: "Alex Applicant", Email: "applicant@jobhive.local", PasswordHash: hash, Role: domain.RoleApplicant, CreatedAt: now, UpdatedAt: now},
	}
	for _, u := range accounts {
		if _, err := users.Create(ctx, u); err != nil {
			return fmt.Errorf("seed: create user %s: %w", u.Email, err)
		}
	}

	job, err := jobs.Create(ctx, &domain.Job{
		Title:         "Backend Engineer",
		Description:   "Build and operate the JobHive platform services.",
		Requirements:  "Go, MongoDB, Redis",
		Location:      "Mexico City",
		Salary:        65000,
		Type:          domain.JobTypeRemote,
		PostedByEmail: "recruiter@jobhive.local",
		PostedByName:  "Rita Recruiter",
		PostedAt:      now,
	})
	if err != nil {
		return fmt.Errorf("seed: create job: %w", err)
	}

	if _, err := apps.Create(ctx, &domain.Application{
		JobID:          job.ID,
		ApplicantEmail: "applicant@jobhive.local",
		ApplicantName:  "Alex Applicant",
		Status:         domain.ApplicationPending,
		AppliedAt:      now,
	}); err != nil {
		return fmt.Errorf("seed: create application: %w", err)
	}

	logger.Info().
		Int("users", len(accounts)).
		Str("job_id", job.ID).
		Msg("demo data seeded")
	return nil
}
