// Package phone implements a catalog mapping names to phone
// numbers, held in a [hashmap.Map].
package phone

import (
	"strings"
	"unicode"
)

// Clean returns number with all white space and hyphens removed.
func Clean(number string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' {
			return -1
		}
		return r
	}, number)
}

// IsCorrect reports whether number is made only of digits,
// white space and hyphens.
func IsCorrect(number string) bool {
	for _, r := range number {
		if !unicode.IsDigit(r) && !unicode.IsSpace(r) && r != '-' {
			return false
		}
	}
	return true
}
