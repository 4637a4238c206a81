package str

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ─────────────────────────────────────────────────────────────────────────────
// Word splitting
//
// Case conversion first normalises camel-case boundaries into spaces, then
// splits on separator runs. Consecutive uppercase letters are treated as a
// single word, so "HTTPServer" splits into "HTTP" and "Server".
// ─────────────────────────────────────────────────────────────────────────────

var (
	separatorRun = regexp.MustCompile(`[\s_.-]+`)

	// lower-or-digit followed by upper: "userId" → "user Id"
	camelBoundary = regexp.MustCompile(`([\p{Ll}\p{Nd}])(\p{Lu})`)

	// uppercase run followed by a capitalised word: "HTTPServer" → "HTTP Server"
	acronymBoundary = regexp.MustCompile(`(\p{Lu}+)(\p{Lu}\p{Ll})`)
)

// words splits s into its constituent words for case conversion.
func words(s string) []string {
	s = acronymBoundary.ReplaceAllString(s, "$1 $2")
	s = camelBoundary.ReplaceAllString(s, "$1 $2")
	parts := separatorRun.Split(s, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Casing
// ─────────────────────────────────────────────────────────────────────────────

// Capitalize upper-cases the first rune of s and lower-cases the remainder.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
}

// CapitalizeWords applies [Capitalize] to every whitespace-separated word,
// preserving the original whitespace.
func CapitalizeWords(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inWord := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			inWord = false
			b.WriteRune(r)
		case !inWord:
			inWord = true
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// Title returns s converted to title case using Unicode casing rules.
// Unlike [CapitalizeWords] it applies language-aware word segmentation and
// special-case mappings.
func Title(s string) string {
	return cases.Title(language.Und).String(s)
}

// Camel converts s to camelCase.
//
//	Camel("user_name")   // "userName"
//	Camel("HTTP server") // "httpServer"
func Camel(s string) string {
	ws := words(s)
	if len(ws) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(ws[0]))
	for _, w := range ws[1:] {
		b.WriteString(Capitalize(w))
	}
	return b.String()
}

// Pascal converts s to PascalCase.
func Pascal(s string) string {
	var b strings.Builder
	for _, w := range words(s) {
		b.WriteString(Capitalize(w))
	}
	return b.String()
}

// Snake converts s to snake_case.
//
//	Snake("userName")   // "user_name"
//	Snake("HTTPServer") // "http_server"
func Snake(s string) string {
	return joinLower(words(s), "_")
}

// Kebab converts s to kebab-case.
func Kebab(s string) string {
	return joinLower(words(s), "-")
}

func joinLower(ws []string, sep string) string {
	for i, w := range ws {
		ws[i] = strings.ToLower(w)
	}
	return strings.Join(ws, sep)
}
