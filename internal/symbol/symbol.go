// Package symbol normalizes and checks stock symbols.
package symbol

import "strings"

// Normalize trims whitespace and uppercases a user-entered symbol.
// "aapl " -> "AAPL".
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Valid reports whether s is a usable symbol: non-empty and made of
// uppercase letters, digits, dots, or dashes (covers SET suffixes like
// "PTT.BK" and preferred-share dashes).
func Valid(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '.' || r == '-':
		default:
			return false
		}
	}
	return true
}
