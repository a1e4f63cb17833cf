package checkin

import (
	"strings"

	"golang.org/x/text/width"
)

// NormalizePhone folds full-width digits to ASCII and strips every
// non-digit character. Kiosk input arrives with spaces, dashes, parentheses
// and occasionally full-width digits from IME keyboards.
func NormalizePhone(s string) string {
	s = width.Narrow.String(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MatchPhone compares a stored phone value against an already normalized
// query. Numeric cell coercion drops leading zeros, so 0912345678 must also
// match a stored 912345678; the comparison retries with leading zeros
// trimmed from both sides when the direct match fails.
func MatchPhone(stored, query string) bool {
	if query == "" {
		return false
	}
	stored = NormalizePhone(stored)
	if stored == "" {
		return false
	}
	if stored == query {
		return true
	}
	ts, tq := strings.TrimLeft(stored, "0"), strings.TrimLeft(query, "0")
	return ts != "" && ts == tq
}
