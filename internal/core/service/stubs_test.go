package service

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/jobhive/backend/internal/core/domain"
	"github.com/jobhive/backend/internal/core/ports"
)

// In-memory doubles for the repository and infrastructure ports.

type stubUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User // keyed by email
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.SavedJobIDs = slices.Clone(u.SavedJobIDs)
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	created := cloneUser(user)
	if created.ID == "" {
		created.ID = fmt.Sprintf("user-%d", len(r.users)+1)
	}
	r.users[created.Email] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for email, u := range r.users {
		if u.ID == id {
			delete(r.users, email)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *stubUserRepo) AddSavedJob(_ context.Context, email, jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return domain.ErrUserNotFound
	}
	if !slices.Contains(u.SavedJobIDs, jobID) {
		u.SavedJobIDs = append(u.SavedJobIDs, jobID)
	}
	return nil
}

func (r *stubUserRepo) RemoveSavedJob(_ context.Context, email, jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.SavedJobIDs = slices.DeleteFunc(u.SavedJobIDs, func(id string) bool { return id == jobID })
	return nil
}

type stubJobRepo struct {
	jobs map[string]*domain.Job
	seq  int
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[string]*domain.Job)}
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) (*domain.Job, error) {
	r.seq++
	created := *job
	created.ID = fmt.Sprintf("job-%d", r.seq)
	r.jobs[created.ID] = &created
	copied := created
	return &copied, nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	if j, ok := r.jobs[id]; ok {
		copied := *j
		return &copied, nil
	}
	return nil, domain.ErrJobNotFound
}

func (r *stubJobRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Job, error) {
	var out []*domain.Job
	for _, id := range ids {
		if j, ok := r.jobs[id]; ok {
			copied := *j
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *stubJobRepo) FindByRecruiter(_ context.Context, email string) ([]*domain.Job, error) {
	var out []*domain.Job
	for _, j := range r.jobs {
		if j.PostedByEmail == email {
			copied := *j
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *stubJobRepo) List(_ context.Context, filter ports.ListJobsFilter) ([]*domain.Job, int64, error) {
	var matched []*domain.Job
	for _, j := range r.jobs {
		if filter.Type != "" && string(j.Type) != filter.Type {
			continue
		}
		if filter.MinSalary > 0 && j.Salary < filter.MinSalary {
			continue
		}
		copied := *j
		matched = append(matched, &copied)
	}
	total := int64(len(matched))

	start := (filter.Page - 1) * filter.Limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := min(start+filter.Limit, len(matched))
	return matched[start:end], total, nil
}

func (r *stubJobRepo) All(_ context.Context) ([]*domain.Job, error) {
	var out []*domain.Job
	for _, j := range r.jobs {
		copied := *j
		out = append(out, &copied)
	}
	return out, nil
}

func (r *stubJobRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.jobs[id]; !ok {
		return domain.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

func (r *stubJobRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.jobs)), nil
}

type stubAppRepo struct {
	apps map[string]*domain.Application
	seq  int
}

func newStubAppRepo() *stubAppRepo {
	return &stubAppRepo{apps: make(map[string]*domain.Application)}
}

func (r *stubAppRepo) Create(_ context.Context, app *domain.Application) (*domain.Application, error) {
	for _, existing := range r.apps {
		if existing.JobID == app.JobID && existing.ApplicantEmail == app.ApplicantEmail {
			return nil, domain.ErrAlreadyApplied
		}
	}
	r.seq++
	created := *app
	created.ID = fmt.Sprintf("app-%d", r.seq)
	r.apps[created.ID] = &created
	copied := created
	return &copied, nil
}

func (r *stubAppRepo) FindByID(_ context.Context, id string) (*domain.Application, error) {
	if a, ok := r.apps[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, domain.ErrApplicationNotFound
}

func (r *stubAppRepo) FindByApplicant(_ context.Context, email string) ([]*domain.Application, error) {
	var out []*domain.Application
	for _, a := range r.apps {
		if a.ApplicantEmail == email {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *stubAppRepo) FindByJob(_ context.Context, jobID string) ([]*domain.Application, error) {
	var out []*domain.Application
	for _, a := range r.apps {
		if a.JobID == jobID {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *stubAppRepo) UpdateStatus(_ context.Context, id string, status domain.ApplicationStatus) error {
	a, ok := r.apps[id]
	if !ok {
		return domain.ErrApplicationNotFound
	}
	a.Status = status
	return nil
}

func (r *stubAppRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.apps)), nil
}

type stubProfileRepo struct {
	profiles map[string]*domain.UserProfile // keyed by user email
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{profiles: make(map[string]*domain.UserProfile)}
}

func (r *stubProfileRepo) FindByUserEmail(_ context.Context, email string) (*domain.UserProfile, error) {
	if p, ok := r.profiles[email]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, domain.ErrProfileNotFound
}

func (r *stubProfileRepo) Upsert(_ context.Context, profile *domain.UserProfile) error {
	copied := *profile
	if copied.ID == "" {
		copied.ID = "profile-" + profile.UserEmail
	}
	r.profiles[profile.UserEmail] = &copied
	return nil
}

type stubFileStore struct {
	saved []string
}

func (s *stubFileStore) Save(filename string, content io.Reader) (string, error) {
	_, _ = io.Copy(io.Discard, content)
	stored := "stored_" + filename
	s.saved = append(s.saved, stored)
	return stored, nil
}

func (s *stubFileStore) Resolve(storedName string) (string, error) {
	if !slices.Contains(s.saved, storedName) {
		return "", domain.ErrResumeNotFound
	}
	return "/uploads/" + storedName, nil
}

type stubDispatcher struct {
	sent []ports.Notification
}

func (d *stubDispatcher) Enqueue(n ports.Notification) {
	d.sent = append(d.sent, n)
}

type stubThrottle struct {
	allowed  bool
	failures int
	resets   int
}

func (t *stubThrottle) Allow(_ context.Context, _ string) bool { return t.allowed }
func (t *stubThrottle) RecordFailure(_ context.Context, _ string) {
	t.failures++
}
func (t *stubThrottle) Reset(_ context.Context, _ string) {
	t.resets++
}
