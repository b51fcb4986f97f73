package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobhive/backend/internal/api/metrics"
	"github.com/jobhive/backend/internal/core/domain"
	"github.com/jobhive/backend/internal/core/ports"
)

// ApplicationService implements the apply/review workflow. Email
// notifications are dispatched asynchronously and never fail the request.
type ApplicationService struct {
	apps       ports.ApplicationRepository
	jobs       ports.JobRepository
	users      ports.UserRepository
	store      ports.FileStore
	dispatcher ports.NotificationDispatcher // optional
	logger     zerolog.Logger
}

func NewApplicationService(
	apps ports.ApplicationRepository,
	jobs ports.JobRepository,
	users ports.UserRepository,
	store ports.FileStore,
	dispatcher ports.NotificationDispatcher,
	logger zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{apps: apps, jobs: jobs, users: users, store: store, dispatcher: dispatcher, logger: logger}
}

// Apply submits an application with a resume. Duplicate applications for
// the same (job, applicant) pair fail with domain.ErrAlreadyApplied,
// enforced by the store's compound uniqueness constraint.
func (s *ApplicationService) Apply(ctx context.Context, jobID, applicantEmail string, resume ports.ResumeUpload) error {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return err
	}
	applicant, err := s.users.FindByEmail(ctx, applicantEmail)
	if err != nil {
		return err
	}

	storedName, err := s.store.Save(resume.Filename, resume.Content)
	if err != nil {
		return fmt.Errorf("store resume: %w", err)
	}

	app := &domain.Application{
		JobID:          job.ID,
		ApplicantEmail: applicant.Email,
		ApplicantName:  applicant.Name,
		Status:         domain.ApplicationPending,
		ResumeFile:     storedName,
		AppliedAt:      time.Now().UTC(),
	}
	if _, err := s.apps.Create(ctx, app); err != nil {
		return err
	}

	metrics.ApplicationsSubmittedTotal.Inc()
	s.logger.Info().Str("job_id", job.ID).Str("applicant", applicant.Email).Msg("application submitted")

	s.notify(ports.Notification{
		To:      job.PostedByEmail,
		Subject: "New application for " + job.Title,
		Body: fmt.Sprintf("%s (%s) applied to your posting %q.",
			applicant.Name, applicant.Email, job.Title),
	})
	return nil
}

// MyApplications lists the caller's applications joined with their jobs.
func (s *ApplicationService) MyApplications(ctx context.Context, applicantEmail string) ([]ports.ApplicationView, error) {
	apps, err := s.apps.FindByApplicant(ctx, applicantEmail)
	if err != nil {
		return nil, err
	}
	return s.toViews(ctx, apps), nil
}

// ForJob lists applicants for a posting. Only the recruiter who posted
// the job may see them.
func (s *ApplicationService) ForJob(ctx context.Context, jobID, recruiterEmail string) ([]ports.ApplicationView, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.PostedByEmail != recruiterEmail {
		return nil, domain.ErrForbidden
	}

	apps, err := s.apps.FindByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return s.toViews(ctx, apps), nil
}

// UpdateStatus moves an application to a new review state and notifies
// the applicant. Only the job's recruiter may update it.
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID string, status domain.ApplicationStatus, recruiterEmail string) error {
	if _, err := domain.ParseApplicationStatus(string(status)); err != nil {
		return err
	}

	app, err := s.apps.FindByID(ctx, applicationID)
	if err != nil {
		return err
	}
	job, err := s.jobs.FindByID(ctx, app.JobID)
	if err != nil {
		return err
	}
	if job.PostedByEmail != recruiterEmail {
		return domain.ErrForbidden
	}

	if err := s.apps.UpdateStatus(ctx, applicationID, status); err != nil {
		return err
	}

	metrics.ApplicationStatusUpdatesTotal.WithLabelValues(string(status)).Inc()
	s.logger.Info().Str("application_id", applicationID).Str("status", string(status)).Msg("application status updated")

	s.notify(ports.Notification{
		To:      app.ApplicantEmail,
		Subject: "Your application for " + job.Title + " was updated",
		Body:    fmt.Sprintf("Your application for %q is now %s.", job.Title, status),
	})
	return nil
}

// ResumeFile resolves an application's resume to a servable path. The
// requester must be the applicant or the job's recruiter.
func (s *ApplicationService) ResumeFile(ctx context.Context, applicationID string, requester domain.Identity) (string, error) {
	app, err := s.apps.FindByID(ctx, applicationID)
	if err != nil {
		return "", err
	}

	switch {
	case requester.Subject == app.ApplicantEmail:
	case requester.Role == domain.RoleRecruiter:
		job, err := s.jobs.FindByID(ctx, app.JobID)
		if err != nil {
			return "", err
		}
		if job.PostedByEmail != requester.Subject {
			return "", domain.ErrForbidden
		}
	default:
		return "", domain.ErrForbidden
	}

	if app.ResumeFile == "" {
		return "", domain.ErrResumeNotFound
	}
	return s.store.Resolve(app.ResumeFile)
}

func (s *ApplicationService) toViews(ctx context.Context, apps []*domain.Application) []ports.ApplicationView {
	views := make([]ports.ApplicationView, 0, len(apps))
	for _, app := range apps {
		view := ports.ApplicationView{
			ID:             app.ID,
			JobID:          app.JobID,
			ApplicantName:  app.ApplicantName,
			ApplicantEmail: app.ApplicantEmail,
			Status:         app.Status,
			AppliedAt:      app.AppliedAt,
		}
		// The posting may have been deleted since; keep the row with the
		// job fields empty rather than dropping the application.
		if job, err := s.jobs.FindByID(ctx, app.JobID); err == nil {
			view.JobTitle = job.Title
			view.JobLocation = job.Location
		}
		views = append(views, view)
	}
	return views
}

func (s *ApplicationService) notify(n ports.Notification) {
	if s.dispatcher != nil {
		s.dispatcher.Enqueue(n)
	}
}
