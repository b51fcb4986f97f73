package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobhive/backend/internal/api/metrics"
	"github.com/jobhive/backend/internal/auth"
	"github.com/jobhive/backend/internal/core/domain"
	"github.com/jobhive/backend/internal/core/ports"
)

// AuthService implements registration and login on top of the user store,
// the password hasher and the token codec.
type AuthService struct {
	repo     ports.UserRepository
	hasher   *auth.Hasher
	codec    *auth.Codec
	throttle ports.LoginThrottle // optional
	logger   zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher *auth.Hasher, codec *auth.Codec, throttle ports.LoginThrottle, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, codec: codec, throttle: throttle, logger: logger}
}

// Register hashes the password and persists a new account. A racing
// duplicate identity loses with domain.ErrUserExists, enforced by the
// store's uniqueness constraint.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if _, err := domain.ParseRole(string(input.Role)); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        domain.NormalizeEmail(input.Email),
		PasswordHash: hash,
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(created.Role)).Inc()
	s.logger.Info().Str("email", created.Email).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues a bearer token. Unknown identity
// and wrong password both fail with domain.ErrInvalidCredentials so the
// error surface does not enable user enumeration.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}
	email = domain.NormalizeEmail(email)

	if s.throttle != nil && !s.throttle.Allow(ctx, email) {
		metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		return "", nil, domain.ErrTooManyAttempts
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.recordFailure(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}

	if s.throttle != nil {
		s.throttle.Reset(ctx, email)
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("email", user.Email).Msg("login succeeded")
	return token, user, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.throttle != nil {
		s.throttle.RecordFailure(ctx, email)
	}
	metrics.LoginsTotal.WithLabelValues("failure").Inc()
}
