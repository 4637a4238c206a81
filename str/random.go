package str

import (
	"github.com/dchest/uniuri"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Random returns a random alphanumeric string of the given length, generated
// from a cryptographically secure source. Returns "" when length <= 0.
func Random(length int) string {
	if length <= 0 {
		return ""
	}
	return uniuri.NewLen(length)
}

// UUID returns a random (version 4) UUID in its canonical 36-character form.
func UUID() string {
	return uuid.NewString()
}

// ULID returns a ULID for the current time: 26 characters, lexicographically
// sortable by creation time.
func ULID() string {
	return ulid.Make().String()
}
