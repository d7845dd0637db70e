package security

import (
	"strings"
	"unicode"
)

// specialChars is the fixed set of characters that satisfy the special
// character requirement.
const specialChars = "!@#$%^&*()-_=+[]{};:'\",.<>/?\\|`~"

// StrengthPolicy enforces the password rules applied uniformly at
// registration and password change: at least 8 characters, one digit, one
// uppercase letter, and one special character. It is stricter than the
// minimum-length check at the request boundary and is authoritative.
type StrengthPolicy struct{}

func NewStrengthPolicy() StrengthPolicy {
	return StrengthPolicy{}
}

func (StrengthPolicy) IsAcceptable(plaintext string) bool {
	if len(plaintext) < 8 {
		return false
	}
	var hasDigit, hasUpper, hasSpecial bool
	for _, r := range plaintext {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		case strings.ContainsRune(specialChars, r):
			hasSpecial = true
		}
	}
	return hasDigit && hasUpper && hasSpecial
}
