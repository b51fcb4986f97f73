package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/jobhive/backend/internal/api/middleware"
	"github.com/jobhive/backend/internal/auth"
	"github.com/jobhive/backend/internal/core/domain"
	"github.com/jobhive/backend/internal/core/ports"
	"github.com/jobhive/backend/internal/core/service"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func newAuthContext(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			if input.Name != "Alice" || input.Role != domain.RoleApplicant {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{
				ID: "user-1", Name: input.Name, Email: input.Email,
				PasswordHash: "$2a$10$secret", Role: input.Role,
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(e, http.MethodPost, "/api/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"pass1234","role":"APPLICANT"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["email"] != "alice@example.com" || user["role"] != "APPLICANT" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if strings.Contains(rec.Body.String(), "secret") {
		t.Fatalf("password hash leaked in response: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := NewAuthHandler(&stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	})

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "not-json"},
		{name: "short password", body: `{"name":"A","email":"a@example.com","password":"short","role":"APPLICANT"}`},
		{name: "bad email", body: `{"name":"A","email":"nope","password":"pass1234","role":"APPLICANT"}`},
		{name: "bad role", body: `{"name":"A","email":"a@example.com","password":"pass1234","role":"WIZARD"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newAuthContext(e, http.MethodPost, "/api/auth/register", tt.body)
			err := handler.Register(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 HTTPError, got %v", err)
			}
		})
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := NewAuthHandler(&stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	})

	c, _ := newAuthContext(e, http.MethodPost, "/api/auth/register",
		`{"name":"Bob","email":"bob@example.com","password":"pass1234","role":"RECRUITER"}`)
	if err := handler.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists to bubble up, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			if email != "alice@example.com" || password != "pass1234" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.User{Email: email, Role: domain.RoleAdmin}, nil
		},
	})

	c, rec := newAuthContext(e, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"pass1234"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token in response, got %+v", resp)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	})

	c, _ := newAuthContext(e, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"wrong-pass"}`)
	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to bubble up, got %v", err)
	}
}

// flowUserRepo is the minimal in-memory store for the end-to-end flow test.
type flowUserRepo struct {
	users map[string]*domain.User
}

func (r *flowUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, ok := r.users[u.Email]; ok {
		return nil, domain.ErrUserExists
	}
	copied := *u
	copied.ID = "user-1"
	r.users[u.Email] = &copied
	return &copied, nil
}

func (r *flowUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *flowUserRepo) List(_ context.Context) ([]*domain.User, error)      { return nil, nil }
func (r *flowUserRepo) Delete(_ context.Context, _ string) error            { return nil }
func (r *flowUserRepo) Count(_ context.Context) (int64, error)              { return 0, nil }
func (r *flowUserRepo) AddSavedJob(_ context.Context, _, _ string) error    { return nil }
func (r *flowUserRepo) RemoveSavedJob(_ context.Context, _, _ string) error { return nil }

// TestAuthFlow_RegisterLoginAccess wires real service, codec and
// middleware together: a fresh account registers, logs in, and uses the
// returned token to pass a recruiter-only gate.
func TestAuthFlow_RegisterLoginAccess(t *testing.T) {
	codec, err := auth.NewCodec("0123456789abcdef0123456789abcdef", time.Hour)
	if err != nil {
		t.Fatalf("NewCodec failed: %v", err)
	}
	repo := &flowUserRepo{users: make(map[string]*domain.User)}
	svc := service.NewAuthService(repo, auth.NewHasher(), codec, nil, zerolog.Nop())
	handler := NewAuthHandler(svc)

	e := echo.New()
	e.Validator = NewValidator()
	e.Use(middleware.ResolveIdentity(codec, repo))
	e.POST("/api/auth/register", handler.Register)
	e.POST("/api/auth/login", handler.Login)
	e.GET("/api/jobs/my-jobs", func(c echo.Context) error {
		id, _ := middleware.IdentityFrom(c)
		return c.JSON(http.StatusOK, map[string]string{"subject": id.Subject})
	}, middleware.RequireRoles(domain.RoleRecruiter))

	// Register.
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"name":"Rita","email":"rita@example.com","password":"pass1234","role":"RECRUITER"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	// Login.
	req = httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"rita@example.com","password":"pass1234"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var loginResp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &loginResp); err != nil || loginResp.Token == "" {
		t.Fatalf("login: missing token in %s", rec.Body.String())
	}

	// Gated route without a token: 401.
	req = httptest.NewRequest(http.MethodGet, "/api/jobs/my-jobs", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous access: expected 401, got %d", rec.Code)
	}

	// Gated route with the token: 200 and the resolved subject.
	req = httptest.NewRequest(http.MethodGet, "/api/jobs/my-jobs", nil)
	req.Header.Set("Authorization", "Bearer "+loginResp.Token)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("token access: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "rita@example.com") {
		t.Fatalf("expected resolved subject in response, got %s", rec.Body.String())
	}
}
