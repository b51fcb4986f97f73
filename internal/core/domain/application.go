package domain

import (
	"errors"
	"strings"
	"time"
)

// ApplicationStatus is the review state of a job application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationReviewed ApplicationStatus = "REVIEWED"
	ApplicationAccepted ApplicationStatus = "ACCEPTED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

var ErrApplicationNotFound = errors.New("application not found")
var ErrAlreadyApplied = errors.New("already applied to this job")
var ErrUnknownStatus = errors.New("unknown application status")
var ErrResumeNotFound = errors.New("resume not found")

// ParseApplicationStatus converts a raw string into an ApplicationStatus.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	switch ApplicationStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case ApplicationPending:
		return ApplicationPending, nil
	case ApplicationReviewed:
		return ApplicationReviewed, nil
	case ApplicationAccepted:
		return ApplicationAccepted, nil
	case ApplicationRejected:
		return ApplicationRejected, nil
	}
	return "", ErrUnknownStatus
}

// Application links an applicant to a job posting. A given applicant can
// apply to a given job at most once (enforced by a unique index).
type Application struct {
	ID             string            `json:"id" bson:"_id,omitempty"`
	JobID          string            `json:"job_id" bson:"job_id"`
	ApplicantEmail string            `json:"applicant_email" bson:"applicant_email"`
	ApplicantName  string            `json:"applicant_name" bson:"applicant_name"`
	Status         ApplicationStatus `json:"status" bson:"status"`
	ResumeFile     string            `json:"-" bson:"resume_file,omitempty"`
	AppliedAt      time.Time         `json:"applied_at" bson:"applied_at"`
}
