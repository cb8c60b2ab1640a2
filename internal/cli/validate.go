package cli

import (
	"regexp"
	"unicode"
)

// Form rules mirroring the storefront's signup/login schemas. Failures
// block the network call; the first failed rule's message is shown.

var (
	emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRx = regexp.MustCompile(`^(?:010|011|012|015)\d{8}$`)
)

func validateRegister(name, email, phone string, password []byte) string {
	if len(name) < 3 || len(name) > 50 {
		return "Name must be 3-50 characters"
	}
	if !emailRx.MatchString(email) {
		return "Enter a valid email"
	}
	if !phoneRx.MatchString(phone) {
		return "Enter a valid Egyptian phone number"
	}
	return validateStrongPassword(password)
}

func validateLogin(email string, password []byte) string {
	if !emailRx.MatchString(email) {
		return "Enter a valid email"
	}
	if len(password) == 0 {
		return "Enter your password"
	}
	return ""
}

// validateStrongPassword enforces the signup policy: min 8 characters
// with lower and upper case, a digit and a special character.
func validateStrongPassword(password []byte) string {
	if len(password) < 8 {
		return "Password must be at least 8 characters"
	}

	var lower, upper, digit, special bool
	for _, r := range string(password) {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	switch {
	case !lower:
		return "Include a lowercase letter"
	case !upper:
		return "Include an uppercase letter"
	case !digit:
		return "Include a number"
	case !special:
		return "Include a special character"
	}
	return ""
}
