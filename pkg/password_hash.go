package pkg

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt cost used for new password hashes.
// Tests lower it to keep sign-up fast.
var PasswordHashCost = 14

func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password empty")
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	return BytesToString(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
