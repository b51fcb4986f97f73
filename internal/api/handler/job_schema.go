package handler

import (
	"time"

	"github.com/jobhive/backend/internal/core/domain"
	"github.com/jobhive/backend/internal/core/ports"
)

type createJobRequest struct {
	Title        string  `json:"title"        validate:"required"`
	Description  string  `json:"description"  validate:"required"`
	Requirements string  `json:"requirements"`
	Location     string  `json:"location"     validate:"required"`
	Salary       float64 `json:"salary"       validate:"required,gt=0"`
	Type         string  `json:"type"         validate:"required,oneof=REMOTE HYBRID ONSITE"`
}

type jobResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements,omitempty"`
	Location     string    `json:"location"`
	Salary       float64   `json:"salary"`
	Type         string    `json:"type"`
	PostedByName string    `json:"posted_by_name"`
	PostedAt     time.Time `json:"posted_at"`
}

type jobListResponse struct {
	Items      []jobResponse `json:"items"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"total_pages"`
}

type savedToggleResponse struct {
	JobID string `json:"job_id"`
	Saved bool   `json:"saved"`
}

func toJobResponse(j *domain.Job) jobResponse {
	return jobResponse{
		ID:           j.ID,
		Title:        j.Title,
		Description:  j.Description,
		Requirements: j.Requirements,
		Location:     j.Location,
		Salary:       j.Salary,
		Type:         string(j.Type),
		PostedByName: j.PostedByName,
		PostedAt:     j.PostedAt,
	}
}

func toJobResponses(jobs []*domain.Job) []jobResponse {
	out := make([]jobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, toJobResponse(j))
	}
	return out
}

func toJobListResponse(page *ports.JobPage) jobListResponse {
	return jobListResponse{
		Items:      toJobResponses(page.Items),
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	}
}
