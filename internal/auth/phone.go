package auth

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

const MinPhoneDigits = 10

// NormalizePhone folds full-width digits and drops everything that is not a
// digit. The result is the owner key for local state.
func NormalizePhone(raw string) string {
	folded := width.Fold.String(strings.TrimSpace(raw))
	var b strings.Builder
	for _, r := range folded {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func ValidPhone(raw string) bool {
	return len(NormalizePhone(raw)) >= MinPhoneDigits
}

// ValidOTP compares the entered one-time code with the expected one, ignoring
// surrounding space and full-width digits.
func ValidOTP(expected, entered string) bool {
	entered = width.Fold.String(strings.TrimFunc(entered, unicode.IsSpace))
	return entered != "" && entered == expected
}
