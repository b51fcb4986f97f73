package ports

import (
	"context"

	"github.com/jobhive/backend/internal/core/domain"
)

// ProfileRepository defines persistence for user profiles, keyed by the
// owning account's email.
type ProfileRepository interface {
	FindByUserEmail(ctx context.Context, email string) (*domain.UserProfile, error)
	Upsert(ctx context.Context, profile *domain.UserProfile) error
}

// ProfileInput carries the editable profile fields.
type ProfileInput struct {
	Headline string
	Bio      string
	Location string
	Skills   string
}

// ProfileView merges account and profile data into one read model.
type ProfileView struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
	Headline string      `json:"headline,omitempty"`
	Bio      string      `json:"bio,omitempty"`
	Location string      `json:"location,omitempty"`
	Skills   string      `json:"skills,omitempty"`
}

// ProfileService defines use-case operations for the caller's own profile.
type ProfileService interface {
	Get(ctx context.Context, email string) (*ProfileView, error)
	Update(ctx context.Context, email string, input ProfileInput, resume *ResumeUpload) (*ProfileView, error)
	// ResumeFile resolves the caller's stored resume to a local path.
	ResumeFile(ctx context.Context, email string) (string, error)
}
