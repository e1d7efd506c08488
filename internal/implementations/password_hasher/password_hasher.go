package passwordhasher

import (
	"exchanger/internal/core/domain/user"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt hash prefixes, used to recognize values that already went through
// HashPassword so a record round-trip never hashes twice.
var hashPrefixes = []string{"$2a$", "$2b$", "$2y$"}

type Bcrypt struct {
	secret string
	cost   int
}

func NewBcrypt(secret string, cost int) *Bcrypt {
	return &Bcrypt{secret: secret, cost: cost}
}

func (h *Bcrypt) HashPassword(password user.RawPassword) (hash user.PasswordHash, err error) {
	bcryptHash, err := bcrypt.GenerateFromPassword([]byte(string(password)+h.secret), h.cost)
	if err != nil {
		return hash, err
	}
	return user.PasswordHash(bcryptHash), nil
}

func (h *Bcrypt) ValidatePassword(password user.RawPassword, hash user.PasswordHash) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(string(password)+h.secret))
	return err == nil
}

func (h *Bcrypt) IsHash(value string) bool {
	for _, prefix := range hashPrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}
