package str

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	digitRun      = regexp.MustCompile(`[0-9]+`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// Reverse returns s with its runes in reverse order.
// It operates on runes, not bytes, so multi-byte characters survive intact.
// Combining characters are not reordered with their base character.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Numbers extracts every maximal run of ASCII digits from s, in order.
// Returns nil when s contains no digits.
//
//	Numbers("a1b22c333") // ["1" "22" "333"]
func Numbers(s string) []string {
	return digitRun.FindAllString(s, -1)
}

// Count returns the number of non-overlapping occurrences of substr in s.
// An empty substr counts as zero occurrences.
func Count(s, substr string) int {
	if substr == "" {
		return 0
	}
	return strings.Count(s, substr)
}

// Truncate shortens s so the result is at most length runes, appending
// suffix when truncation happens. The suffix defaults to "..." and counts
// toward the bound, so the result is exactly length runes when s is long
// enough. Strings already within the bound are returned unchanged, without
// the suffix.
//
// Returns [ErrInvalidLength] when length <= 0, and [ErrSuffixTooLong] when
// the suffix alone exceeds length.
func Truncate(s string, length int, suffix ...string) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}
	sfx := "..."
	if len(suffix) > 0 {
		sfx = suffix[0]
	}

	runes := []rune(s)
	if len(runes) <= length {
		return s, nil
	}
	sfxRunes := []rune(sfx)
	if len(sfxRunes) > length {
		return "", fmt.Errorf("%w: %q does not fit in %d", ErrSuffixTooLong, sfx, length)
	}
	return string(runes[:length-len(sfxRunes)]) + sfx, nil
}

// StripWhitespace removes every Unicode whitespace character from s.
func StripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Squish trims s and collapses every internal whitespace run to a single
// space.
//
//	Squish("  hello   world ") // "hello world"
func Squish(s string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(s), " ")
}
