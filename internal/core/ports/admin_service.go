package ports

import (
	"context"

	"github.com/jobhive/backend/internal/core/domain"
)

// PlatformStats is the admin dashboard summary.
type PlatformStats struct {
	TotalUsers        int64 `json:"total_users"`
	TotalJobs         int64 `json:"total_jobs"`
	TotalApplications int64 `json:"total_applications"`
}

// AdminService defines moderation operations. All of them are gated to
// the ADMIN role at the transport layer.
type AdminService interface {
	Stats(ctx context.Context) (*PlatformStats, error)
	Users(ctx context.Context) ([]*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
	Jobs(ctx context.Context) ([]*domain.Job, error)
	DeleteJob(ctx context.Context, id string) error
}
