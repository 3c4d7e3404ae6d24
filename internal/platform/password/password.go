// Package password provides one-way salted password hashing on top of bcrypt.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DummyHash is a valid bcrypt hash of a throwaway value. Login flows compare
// against it when the user does not exist so that a missing account and a
// wrong password take comparable time.
const DummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

const defaultMaxConcurrent = 8

// Hasher hashes and verifies passwords. bcrypt is deliberately expensive, so
// the hasher bounds how many hash computations run at once with a channel
// semaphore; callers beyond the bound block until a slot frees up.
type Hasher struct {
	cost int
	sem  chan struct{}
}

// NewHasher creates a Hasher with the given bcrypt cost and concurrency bound.
// Zero or negative values select bcrypt.DefaultCost and a small default bound.
func NewHasher(cost, maxConcurrent int) *Hasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrent
	}
	return &Hasher{
		cost: cost,
		sem:  make(chan struct{}, maxConcurrent),
	}
}

// Hash produces a salted bcrypt digest of plain. Each call generates a fresh
// salt, so hashing the same password twice yields different values; stored
// hashes must never be compared by string equality.
func (h *Hasher) Hash(plain string) (string, error) {
	h.sem <- struct{}{}
	defer func() { <-h.sem }()

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plain, hashed with the salt embedded in hashed,
// reproduces hashed. A malformed hash yields false, never an error or panic.
func (h *Hasher) Verify(plain, hashed string) bool {
	h.sem <- struct{}{}
	defer func() { <-h.sem }()

	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
