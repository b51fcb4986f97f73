package ports

import (
	"context"
	"io"
	"time"

	"github.com/jobhive/backend/internal/core/domain"
)

// ResumeUpload is an uploaded resume file handed from the transport layer
// to a service.
type ResumeUpload struct {
	Filename string
	Content  io.Reader
}

// ApplicationView is the application read model returned to callers,
// joined with the posting it targets.
type ApplicationView struct {
	ID             string                   `json:"id"`
	JobID          string                   `json:"job_id"`
	JobTitle       string                   `json:"job_title"`
	JobLocation    string                   `json:"job_location"`
	ApplicantName  string                   `json:"applicant_name"`
	ApplicantEmail string                   `json:"applicant_email"`
	Status         domain.ApplicationStatus `json:"status"`
	AppliedAt      time.Time                `json:"applied_at"`
}

// ApplicationService defines use-case operations for applications.
type ApplicationService interface {
	Apply(ctx context.Context, jobID, applicantEmail string, resume ResumeUpload) error
	MyApplications(ctx context.Context, applicantEmail string) ([]ApplicationView, error)
	// ForJob lists applicants for a posting; only the recruiter who posted
	// the job may call it.
	ForJob(ctx context.Context, jobID, recruiterEmail string) ([]ApplicationView, error)
	UpdateStatus(ctx context.Context, applicationID string, status domain.ApplicationStatus, recruiterEmail string) error
	// ResumeFile resolves the stored resume of an application to a local
	// path, enforcing that the requester is the applicant or the job's
	// recruiter.
	ResumeFile(ctx context.Context, applicationID string, requester domain.Identity) (string, error)
}
