// internal/pkg/slug/slug.go
package slug

import (
	"fmt"
	"strings"
	"unicode"
)

// Derive builds a URL-safe slug from the project name and company:
// lower-cased, runs of whitespace/punctuation collapsed to single hyphens.
func Derive(projectName, company string) string {
	return Make(projectName + " " + company)
}

// Make slugifies an arbitrary string.
func Make(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// Uniquify returns base unchanged when free, otherwise probes base-2,
// base-3, … until exists reports a free slug. Identical name+company pairs
// therefore always produce distinct, non-colliding slugs.
func Uniquify(base string, exists func(string) (bool, error)) (string, error) {
	taken, err := exists(base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
}
