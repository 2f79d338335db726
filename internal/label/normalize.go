package label

import (
	"strings"
	"unicode/utf8"
)

// NormalizeQuotes undoes spreadsheet quoting of a cell: one wrapping pair of
// double quotes is removed and every doubled quote ("") becomes a single
// quote. The input is not modified.
func NormalizeQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return strings.ReplaceAll(s, `""`, `"`)
}

// IsAffirmative reports whether a cell sets a flag: "Y" or "YES" in any case.
func IsAffirmative(s string) bool {
	s = strings.TrimSpace(s)
	return strings.EqualFold(s, "Y") || strings.EqualFold(s, "YES")
}

// IsNotApplicable reports whether a cell holds the explicit "N/A" marker.
func IsNotApplicable(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "N/A")
}

// Bound limits s to capacity characters. The returned flag is true when s
// had to be shortened. A capacity of zero means unbounded.
func Bound(s string, capacity int) (string, bool) {
	if capacity <= 0 || utf8.RuneCountInString(s) <= capacity {
		return s, false
	}
	n := 0
	for i := range s {
		if n == capacity {
			return s[:i], true
		}
		n++
	}
	return s, false
}
