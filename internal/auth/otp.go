package auth

import (
	"net/mail"
	"strings"

	"github.com/jaevor/go-nanoid"
	"golang.org/x/crypto/bcrypt"
)

const CodeLength = 6

var generateCode = mustDigits(CodeLength)

func mustDigits(length int) func() string {
	gen, err := nanoid.CustomASCII("0123456789", length)
	if err != nil {
		panic(err)
	}
	return gen
}

// GenerateCode returns a fresh numeric one-time code.
func GenerateCode() string {
	return generateCode()
}

func HashCode(code string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckCode(code, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}

// IsCodeShaped reports whether s could be a one-time code at all.
func IsCodeShaped(s string) bool {
	if len(s) != CodeLength {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// NormalizeEmail trims and lowercases a bare address. Display-name forms
// such as "Alice <alice@example.com>" are rejected.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return "", ErrInvalidEmail
	}
	return email, nil
}
