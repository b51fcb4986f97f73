package domain

import (
	"errors"
	"strings"
	"time"
)

// JobType describes the working arrangement of a posting.
type JobType string

const (
	JobTypeRemote JobType = "REMOTE"
	JobTypeHybrid JobType = "HYBRID"
	JobTypeOnsite JobType = "ONSITE"
)

var ErrJobNotFound = errors.New("job not found")
var ErrUnknownJobType = errors.New("unknown job type")
var ErrForbidden = errors.New("access forbidden")

// ParseJobType converts a raw string into a JobType.
func ParseJobType(s string) (JobType, error) {
	switch JobType(strings.ToUpper(strings.TrimSpace(s))) {
	case JobTypeRemote:
		return JobTypeRemote, nil
	case JobTypeHybrid:
		return JobTypeHybrid, nil
	case JobTypeOnsite:
		return JobTypeOnsite, nil
	}
	return "", ErrUnknownJobType
}

// Job is a posting created by a recruiter.
type Job struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Title         string    `json:"title" bson:"title"`
	Description   string    `json:"description" bson:"description"`
	Requirements  string    `json:"requirements,omitempty" bson:"requirements,omitempty"`
	Location      string    `json:"location" bson:"location"`
	Salary        float64   `json:"salary" bson:"salary"`
	Type          JobType   `json:"type" bson:"type"`
	PostedByEmail string    `json:"posted_by_email" bson:"posted_by_email"`
	PostedByName  string    `json:"posted_by_name" bson:"posted_by_name"`
	PostedAt      time.Time `json:"posted_at" bson:"posted_at"`
}
