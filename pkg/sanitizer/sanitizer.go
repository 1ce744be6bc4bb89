// Package sanitizer normalizes free-text fields received from upstream
// services before they reach presentation. It never rejects a value,
// only cleans it: trims, collapses runs of whitespace, strips control
// runes.
package sanitizer

import (
	"strings"
	"unicode"
)

func Clean(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var b strings.Builder
	lastWasSpace := false
	for _, r := range s {
		switch {
		case unicode.IsControl(r):
			continue
		case unicode.IsSpace(r):
			if !lastWasSpace {
				b.WriteRune(' ')
				lastWasSpace = true
			}
		default:
			b.WriteRune(r)
			lastWasSpace = false
		}
	}

	return strings.TrimSpace(b.String())
}

func CleanPtr(s *string) *string {
	if s == nil {
		return nil
	}
	cleaned := Clean(*s)
	return &cleaned
}
