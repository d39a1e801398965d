// Package pickupcode generates and compares the short codes a customer reads
// out to the partner at the door.
package pickupcode

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/width"
)

const (
	Length   = 6
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// New returns a random upper-case alphanumeric code of Length characters.
func New() (string, error) {
	var sb strings.Builder
	sb.Grow(Length)
	limit := big.NewInt(int64(len(alphabet)))
	for i := 0; i < Length; i++ {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("generate pickup code: %w", err)
		}
		sb.WriteByte(alphabet[n.Int64()])
	}
	return sb.String(), nil
}

// Normalize trims the code, folds full-width characters and upper-cases it.
// Casers are not safe for concurrent use, so one is built per call.
func Normalize(code string) string {
	return cases.Upper(language.Und).String(width.Fold.String(strings.TrimSpace(code)))
}

// Match reports whether entered equals the stored code after normalisation,
// so lower-case and full-width entries of "AB12CD" both match. An empty entry
// never matches.
func Match(stored, entered string) bool {
	entered = Normalize(entered)
	if entered == "" {
		return false
	}
	return Normalize(stored) == entered
}
