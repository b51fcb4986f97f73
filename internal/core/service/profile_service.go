package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jobhive/backend/internal/core/domain"
	"github.com/jobhive/backend/internal/core/ports"
)

// ProfileService implements the caller's own profile operations.
type ProfileService struct {
	profiles ports.ProfileRepository
	users    ports.UserRepository
	store    ports.FileStore
	logger   zerolog.Logger
}

func NewProfileService(profiles ports.ProfileRepository, users ports.UserRepository, store ports.FileStore, logger zerolog.Logger) *ProfileService {
	return &ProfileService{profiles: profiles, users: users, store: store, logger: logger}
}

// Get merges account and profile data. An account without a stored
// profile yields a view with empty profile fields.
func (s *ProfileService) Get(ctx context.Context, email string) (*ports.ProfileView, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	view := &ports.ProfileView{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}

	profile, err := s.profiles.FindByUserEmail(ctx, user.Email)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return view, nil
		}
		return nil, err
	}

	view.Headline = profile.Headline
	view.Bio = profile.Bio
	view.Location = profile.Location
	view.Skills = profile.Skills
	return view, nil
}

// Update creates or replaces the caller's profile and optionally stores a
// new resume.
func (s *ProfileService) Update(ctx context.Context, email string, input ports.ProfileInput, resume *ports.ResumeUpload) (*ports.ProfileView, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.FindByUserEmail(ctx, user.Email)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			return nil, err
		}
		profile = &domain.UserProfile{UserEmail: user.Email}
	}

	profile.Headline = input.Headline
	profile.Bio = input.Bio
	profile.Location = input.Location
	profile.Skills = input.Skills

	if resume != nil {
		storedName, err := s.store.Save(resume.Filename, resume.Content)
		if err != nil {
			return nil, fmt.Errorf("store resume: %w", err)
		}
		profile.ResumeFile = storedName
	}

	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", user.Email).Msg("profile updated")
	return s.Get(ctx, email)
}

// ResumeFile resolves the caller's stored resume to a servable path.
func (s *ProfileService) ResumeFile(ctx context.Context, email string) (string, error) {
	profile, err := s.profiles.FindByUserEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if profile.ResumeFile == "" {
		return "", domain.ErrResumeNotFound
	}
	return s.store.Resolve(profile.ResumeFile)
}
