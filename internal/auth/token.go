// Package auth implements the credential primitives of the API: one-way
// password hashing and the signed bearer tokens carried in Authorization
// headers. Tokens are stateless; validity is proven by signature and
// expiry alone, never by server-side storage.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jobhive/backend/internal/core/domain"
)

// DefaultTokenTTL is the issuance lifetime used when none is configured.
const DefaultTokenTTL = 10 * time.Hour

// HS256 requires key material of at least the hash output size.
const minSecretLen = 32

var (
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenSignature = errors.New("token signature invalid")
	ErrTokenExpired   = errors.New("token expired")
)

// Claims is the verified content of a bearer token.
type Claims struct {
	Subject   string
	Roles     []domain.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// tokenClaims is the wire shape: registered claims plus a list of
// prefixed role strings ("ROLE_ADMIN").
type tokenClaims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// Codec signs and verifies compact HS256 bearer tokens. The signing key
// is fixed at construction and shared by issuance and verification; it is
// never mutated afterwards, so a single Codec is safe for concurrent use.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec builds a Codec from the process-wide signing secret. A missing
// or short secret is a configuration error the caller must treat as fatal.
func NewCodec(secret string, ttl time.Duration) (*Codec, error) {
	if len(secret) < minSecretLen {
		return nil, fmt.Errorf("auth: signing secret must be at least %d bytes", minSecretLen)
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue creates a signed token for subject carrying the given role,
// valid from now until now+ttl.
func (c *Codec) Issue(subject string, role domain.Role) (string, error) {
	if subject == "" {
		return "", fmt.Errorf("auth: cannot issue token with empty subject")
	}
	now := c.now().UTC()
	claims := tokenClaims{
		Roles: []string{role.ClaimString()},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// ParseAndVerify decodes a token, checks its signature and expiry, and
// returns the claims. Claims are never inspected before the signature
// verifies. Failures are one of ErrTokenMalformed, ErrTokenSignature or
// ErrTokenExpired.
func (c *Codec) ParseAndVerify(tokenString string) (*Claims, error) {
	var tc tokenClaims
	parsed, err := jwt.ParseWithClaims(tokenString, &tc, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return c.now() }))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignature
		default:
			return nil, ErrTokenMalformed
		}
	}
	if !parsed.Valid || tc.Subject == "" || tc.ExpiresAt == nil {
		return nil, ErrTokenMalformed
	}

	roles := make([]domain.Role, 0, len(tc.Roles))
	for _, raw := range tc.Roles {
		role, err := domain.ParseClaimRole(raw)
		if err != nil {
			return nil, ErrTokenMalformed
		}
		roles = append(roles, role)
	}
	if len(roles) == 0 {
		return nil, ErrTokenMalformed
	}

	claims := &Claims{
		Subject:   tc.Subject,
		Roles:     roles,
		ExpiresAt: tc.ExpiresAt.Time,
	}
	if tc.IssuedAt != nil {
		claims.IssuedAt = tc.IssuedAt.Time
	}
	return claims, nil
}

// IsValid reports whether tokenString verifies and was issued for
// expectedSubject.
func (c *Codec) IsValid(tokenString, expectedSubject string) bool {
	claims, err := c.ParseAndVerify(tokenString)
	return err == nil && claims.Subject == expectedSubject
}

// TTL returns the configured issuance lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}
