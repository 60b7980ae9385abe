package utils

import (
	"errors"
	"fmt"
	"sync"

	"github.com/yeremiapane/restaurant-ai/models"
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor used for every stored credential.
const PasswordCost = 10

var ErrEmptyPassword = errors.New("password must not be empty")

func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

var (
	placeholderOnce   sync.Once
	placeholderDigest []byte
)

// placeholderHash is compared against when no credential holder was found, so unknown
// identifiers cost the same bcrypt work as known ones.
func placeholderHash() []byte {
	placeholderOnce.Do(func() {
		placeholderDigest, _ = bcrypt.GenerateFromPassword([]byte("placeholder-credential"), PasswordCost)
	})
	return placeholderDigest
}

// VerifyCredential checks password against whatever hash the credential holder stores.
// A nil credential always fails, after the same amount of hashing.
func VerifyCredential(c models.Credential, password string) bool {
	if c == nil {
		bcrypt.CompareHashAndPassword(placeholderHash(), []byte(password))
		return false
	}
	digest := c.PasswordDigest()
	if digest == "" {
		return false
	}
	return CheckPassword(digest, password) == nil
}
