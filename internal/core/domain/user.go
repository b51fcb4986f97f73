package domain

import (
	"errors"
	"strings"
	"time"
)

// Role is the closed set of account roles. Every user holds exactly one
// role, fixed at registration.
type Role string

const (
	RoleApplicant Role = "APPLICANT"
	RoleRecruiter Role = "RECRUITER"
	RoleAdmin     Role = "ADMIN"
)

// roleClaimPrefix is prepended to role names inside token claims,
// e.g. "ROLE_ADMIN".
const roleClaimPrefix = "ROLE_"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrUnknownRole = errors.New("unknown role")
var ErrTooManyAttempts = errors.New("too many login attempts")

// ParseRole converts a raw string into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleApplicant:
		return RoleApplicant, nil
	case RoleRecruiter:
		return RoleRecruiter, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", ErrUnknownRole
}

// ClaimString returns the prefixed wire form of the role ("ROLE_RECRUITER").
func (r Role) ClaimString() string {
	return roleClaimPrefix + string(r)
}

// ParseClaimRole converts a prefixed claim string back into a Role.
// Unrecognised values are rejected so the enum stays closed at the
// token boundary.
func ParseClaimRole(s string) (Role, error) {
	name, ok := strings.CutPrefix(s, roleClaimPrefix)
	if !ok {
		return "", ErrUnknownRole
	}
	return ParseRole(name)
}

// NormalizeEmail canonicalises an identity string. Lookups and storage
// must both go through this so "A@x.com" and "a@x.com" are one account.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// User models an account in the system.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	SavedJobIDs  []string  `json:"saved_job_ids,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the authenticated principal derived from a verified bearer
// token. It is attached to a single request's scope and never shared
// between requests.
type Identity struct {
	Subject string
	Role    Role
}

// HasRole reports whether the identity's role is in the given set.
func (id Identity) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if id.Role == r {
			return true
		}
	}
	return false
}
