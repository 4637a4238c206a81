package str

import (
	"regexp"
	"strings"
)

// Fixed validation patterns. Both are best-effort everyday checks, not full
// RFC implementations; see the package documentation.
var (
	digitsPattern = regexp.MustCompile(`^[0-9]+$`)
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	urlPattern    = regexp.MustCompile(`^https?://[^\s/$.?#].[^\s]*$`)
)

// IsEmpty reports whether s has zero length.
func IsEmpty(s string) bool {
	return s == ""
}

// IsBlank reports whether s is empty or consists only of whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsDigits reports whether s is non-empty and contains only ASCII digits.
func IsDigits(s string) bool {
	return digitsPattern.MatchString(s)
}

// IsEmail reports whether s looks like an email address. The check is a
// fixed best-effort pattern (something@something.tld), not an RFC 5322
// validation.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsURL reports whether s looks like an http or https URL. The check is a
// fixed best-effort pattern, not an RFC 3986 validation.
func IsURL(s string) bool {
	return urlPattern.MatchString(s)
}
