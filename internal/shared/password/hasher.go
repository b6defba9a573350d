package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher encodes plaintext passwords one way and verifies them later.
type Hasher interface {
	Encode(plain string) (string, error)
	Matches(plain, hashed string) bool
}

// BcryptHasher is the only password algorithm of the service.
// The cost is fixed at construction; hashes keep their own cost in the
// "$2a$<cost>$" prefix so raising it later does not break existing logins.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("password: bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &BcryptHasher{cost: cost}, nil
}

var _ Hasher = (*BcryptHasher)(nil)

func (h *BcryptHasher) Encode(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("password: hash: %w", err)
	}
	return string(hashed), nil
}

// Matches reports false for malformed hashes instead of failing.
func (h *BcryptHasher) Matches(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// Cost reports the bcrypt work factor used by Encode.
func (h *BcryptHasher) Cost() int {
	return h.cost
}
