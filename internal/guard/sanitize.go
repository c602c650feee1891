// Package guard owns the request-side protections: input sanitization,
// topic guardrails, and the per-client rate limiter.
package guard

import (
	"fmt"
	"regexp"
	"strings"

	"docnav/internal/models"
)

// DefaultMaxQueryLength caps sanitized query length in characters.
const DefaultMaxQueryLength = 4000

// MinQueryLength is the shortest query accepted by validation.
const MinQueryLength = 3

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Sanitize normalizes raw user input: trims whitespace, strips tag-shaped
// substrings and ASCII control characters (keeping tab, LF, CR), and
// truncates to maxLen characters. It is deterministic and idempotent, and
// always returns a string, possibly empty.
func Sanitize(input string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxQueryLength
	}

	s := strings.TrimSpace(input)

	// Stripping a tag can expose a new tag shape ("<<b>>"), so repeat
	// until stable — required for idempotency.
	for {
		stripped := tagPattern.ReplaceAllString(s, "")
		if stripped == s {
			break
		}
		s = stripped
	}

	s = strings.Map(func(r rune) rune {
		if isControl(r) {
			return -1
		}
		return r
	}, s)

	runes := []rune(s)
	if len(runes) > maxLen {
		s = string(runes[:maxLen])
	}
	return strings.TrimSpace(s)
}

// isControl covers 0x00–0x08, 0x0B, 0x0C, 0x0E–0x1F and 0x7F; tab,
// newline and carriage return survive.
func isControl(r rune) bool {
	switch r {
	case '\t', '\n', '\r':
		return false
	}
	return (r >= 0x00 && r <= 0x1F) || r == 0x7F
}

// ValidateQuery checks length bounds on an already-sanitized query.
func ValidateQuery(query string, maxLen int) error {
	if maxLen <= 0 {
		maxLen = DefaultMaxQueryLength
	}
	n := len([]rune(query))
	if n < MinQueryLength {
		return fmt.Errorf("%w: query must be at least %d characters", models.ErrValidation, MinQueryLength)
	}
	if n > maxLen {
		return fmt.Errorf("%w: query exceeds %d characters", models.ErrValidation, maxLen)
	}
	return nil
}
