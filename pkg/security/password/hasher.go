package password

import "golang.org/x/crypto/bcrypt"

// Hasher wraps bcrypt with a configurable cost factor.
type Hasher struct {
	cost int
}

// NewHasher clamps out-of-range costs to the bcrypt default.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Compare reports whether plaintext matches the stored hash.
// A mismatch is a false result, not an error.
func (h *Hasher) Compare(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
