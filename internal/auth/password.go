package auth

import "golang.org/x/crypto/bcrypt"

// Hasher wraps bcrypt: salted, cost-adaptive, constant-time comparison.
// The salt is embedded in the hash output, so verification needs no side
// channel.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher at the default bcrypt cost.
func NewHasher() *Hasher {
	return &Hasher{cost: bcrypt.DefaultCost}
}

// Hash returns the salted one-way hash of plaintext. The plaintext is
// never retained.
func (h *Hasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext matches the stored hash. A malformed
// stored hash verifies false rather than erroring.
func (h *Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
