package splitter

import (
	"strings"
	"unicode"
)

// SafeName maps an arbitrary title/number string to a token usable as a
// file or directory name on common filesystems: letters, digits, spaces,
// hyphens and underscores are kept, everything else is dropped, and the
// trimmed result has spaces replaced with underscores. Deterministic and
// filesystem-independent.
func SafeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return strings.ReplaceAll(strings.TrimSpace(b.String()), " ", "_")
}
