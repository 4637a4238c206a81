package str_test

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/hasbyte1/go-handy-utils/str"
)

// FuzzTruncate ensures that Truncate never panics, never exceeds the rune
// bound, and fails with the documented sentinels exactly when it should.
//
// Run with: go test -fuzz=FuzzTruncate ./str/
func FuzzTruncate(f *testing.F) {
	f.Add("hello world", 5, "...")
	f.Add("", 1, "...")
	f.Add("héllo wörld", 7, "…")
	f.Add("short", 100, "")
	f.Add("x", 0, "...")
	f.Add("abc", -2, "!")
	f.Add("abcdef", 2, "...")

	f.Fuzz(func(t *testing.T, s string, length int, suffix string) {
		got, err := str.Truncate(s, length, suffix)

		if length <= 0 {
			if !errors.Is(err, str.ErrInvalidLength) {
				t.Fatalf("length %d: error = %v; want ErrInvalidLength", length, err)
			}
			return
		}
		if utf8.RuneCountInString(s) > length && utf8.RuneCountInString(suffix) > length {
			if !errors.Is(err, str.ErrSuffixTooLong) {
				t.Fatalf("suffix %q, length %d: error = %v; want ErrSuffixTooLong", suffix, length, err)
			}
			return
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == s {
			return // already within the bound
		}
		if n := utf8.RuneCountInString(got); n != length {
			t.Fatalf("truncated result %q has %d runes; bound was %d", got, n, length)
		}
		if !strings.HasSuffix(got, suffix) {
			t.Fatalf("truncated result %q does not end in %q", got, suffix)
		}
	})
}

// FuzzReverse ensures Reverse preserves rune count and is its own inverse.
func FuzzReverse(f *testing.F) {
	f.Add("hello")
	f.Add("")
	f.Add("héllo wörld")
	f.Add("日本語")

	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			t.Skip("reversal is only defined for valid UTF-8")
		}
		rev := str.Reverse(s)
		if utf8.RuneCountInString(rev) != utf8.RuneCountInString(s) {
			t.Fatalf("rune count changed: %q vs %q", s, rev)
		}
		if got := str.Reverse(rev); got != s {
			t.Fatalf("Reverse(Reverse(%q)) = %q", s, got)
		}
	})
}

// FuzzSlug ensures Slug output stays within its URL-safe alphabet and never
// starts or ends with a hyphen.
func FuzzSlug(f *testing.F) {
	f.Add("Héllo, Wörld!")
	f.Add("")
	f.Add("---")
	f.Add("under_score")
	f.Add("数字123")

	f.Fuzz(func(t *testing.T, s string) {
		got := str.Slug(s)
		if got == "" {
			return
		}
		if strings.HasPrefix(got, "-") || strings.HasSuffix(got, "-") {
			t.Fatalf("Slug(%q) = %q has a boundary hyphen", s, got)
		}
		for _, r := range got {
			ok := r == '-' || r == '_' ||
				(r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
			if !ok {
				t.Fatalf("Slug(%q) contains %q", s, r)
			}
		}
	})
}
