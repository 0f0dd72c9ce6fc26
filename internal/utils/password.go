package utils

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// ValidPassword enforces the signup password policy: at least 8 characters
// with an upper, a lower, a digit and a special character.
func ValidPassword(pw string) bool {
	if len(pw) < 8 {
		return false
	}
	var upper, lower, digit, special bool
	for _, ch := range pw {
		switch {
		case unicode.IsUpper(ch):
			upper = true
		case unicode.IsLower(ch):
			lower = true
		case unicode.IsDigit(ch):
			digit = true
		default:
			special = true
		}
	}
	return upper && lower && digit && special
}

// ValidFullName accepts exactly two alphabetic words separated by one space.
func ValidFullName(name string) bool {
	words := 0
	prevSpace := true
	for _, ch := range name {
		if ch == ' ' {
			if prevSpace {
				return false
			}
			prevSpace = true
			continue
		}
		if !unicode.IsLetter(ch) || ch > unicode.MaxASCII {
			return false
		}
		if prevSpace {
			words++
		}
		prevSpace = false
	}
	return words == 2 && !prevSpace
}
