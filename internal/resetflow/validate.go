package resetflow

import (
	"errors"
	"fmt"
	"regexp"
	"unicode"

	"shopfront/internal/api"
)

var (
	emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	otpRx   = regexp.MustCompile(`^\d{6}$`)
)

const (
	msgInvalidEmail = "Enter a valid email"
	msgInvalidOtp   = "Enter the 6-digit code"
	msgUnexpected   = "An unexpected error occurred."
)

// validatePassword mirrors the sign-up password rules. Returns the message
// of the first failed rule, or "" when all pass.
func validatePassword(password, confirm string) string {
	if len(password) < 8 {
		return "Password must be at least 8 characters"
	}

	var upper, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper {
		return "Include an uppercase letter"
	}
	if !digit {
		return "Include a number"
	}
	if password != confirm {
		return "Passwords must match"
	}
	return ""
}

func waitMessage(seconds int) string {
	return fmt.Sprintf("Please wait %ds before resending.", seconds)
}

// errorMessage surfaces backend rejections verbatim and hides everything
// else behind a generic message.
func errorMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return msgUnexpected
}
