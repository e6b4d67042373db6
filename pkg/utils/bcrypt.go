package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt work factor applied to admin passwords
const hashCost = bcrypt.DefaultCost

const minPasswordLength = 6

// HashPassword derives a bcrypt hash for storage
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// ComparePassword checks a plain password against a stored hash. The error
// stays generic regardless of why the match failed.
func ComparePassword(hashedPassword, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		return errors.New("invalid password")
	}
	return nil
}

// CheckPasswordStrength rejects passwords below the minimum length
func CheckPasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return errors.New("password must be at least 6 characters long")
	}
	return nil
}
