package lists

import "errors"

// Sentinel errors returned by list operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := lists.Chunk(items, 0)
//	if errors.Is(err, lists.ErrInvalidChunkSize) {
//	    // size was <= 0
//	}
var (
	// ErrInvalidChunkSize is returned by [Chunk] when size <= 0.
	ErrInvalidChunkSize = errors.New("lists: chunk size must be greater than 0")
)
