package passwordservice

import (
	"fmt"

	"github.com/natembeza/curalink/internal/domain/contract"
	"github.com/natembeza/curalink/internal/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is a moderate work factor; raising it invalidates nothing,
// existing hashes keep their original cost.
const bcryptCost = 10

type Hasher struct{}

// check if IHasher was implemented at compile time
var _ contract.IHasher = (*Hasher)(nil)

func NewHasher() *Hasher {
	return &Hasher{}
}

func (h *Hasher) HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func (h *Hasher) ComparePasswordHash(password, hashedPassword string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if err == bcrypt.ErrMismatchedHashAndPassword {
			return entity.ErrInvalidCredentials
		}
		return fmt.Errorf("failed to check password hash: %w", err)
	}
	return nil
}
