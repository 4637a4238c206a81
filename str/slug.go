package str

import (
	"regexp"
	"strings"

	"github.com/rainycape/unidecode"
)

var slugPattern = regexp.MustCompile(`\W+`)

// Slug returns a URL-safe version of s: unicode characters are
// transliterated to ASCII (ó becomes o, â becomes a), runs of
// non-word characters are replaced with a single hyphen, and the result
// is lower-cased.
//
//	Slug("Héllo, Wörld!") // "hello-world"
func Slug(s string) string {
	decoded := unidecode.Unidecode(s)
	hyphenated := slugPattern.ReplaceAllString(decoded, "-")
	return strings.ToLower(strings.Trim(hyphenated, "-"))
}
