package psswd

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const DefaultCost = bcrypt.DefaultCost

// ErrPasswordTooLong bcrypt only reads the first 72 bytes of a password.
var ErrPasswordTooLong = errors.New("password is longer than 72 bytes")

// Bcrypt implements service.PasswordHasher.
type Bcrypt struct {
	cost int
}

// New a cost outside bcrypt's range falls back to DefaultCost.
func New(cost int) Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return Bcrypt{cost: cost}
}

func (b Bcrypt) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", fmt.Errorf("hashing password: %s", err.Error())
	}
	return string(hash), nil
}

func (b Bcrypt) ComparePassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
