package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMalformedPasswordHash is returned by VerifyPassword when the stored
// hash is not a bcrypt hash this package can read.
var ErrMalformedPasswordHash = errors.New("malformed password hash")

// HashPassword returns the bcrypt hash of plain using the given work factor.
// Each call uses a fresh random salt, so hashing the same password twice
// yields different strings that both verify.
func HashPassword(plain string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// VerifyPassword reports whether plain matches the bcrypt hash.
//
// A mismatch is not an error: it returns (false, nil). A stored hash that
// cannot be parsed returns (false, err) with err wrapping
// ErrMalformedPasswordHash.
func VerifyPassword(plain, hashed string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrMalformedPasswordHash, err)
	}
}
