package lists

import (
	"encoding/json"
	"fmt"
)

// Sequence is a generic, immutable-by-default wrapper around a slice of T.
//
// Every method that transforms the sequence returns a new Sequence, leaving
// the original unchanged, so a Sequence may be read from several goroutines
// at once. Methods delegate to the package-level functions; the wrapper adds
// only chaining ergonomics:
//
//	out := lists.New(1, 2, 3, 4, 5, 6).
//	    Filter(func(n int) bool { return n%2 == 0 }).
//	    Reverse().
//	    All() // → [6 4 2]
//
// Operations that change the element type or require comparable elements
// (Map, GroupBy, Unique, Intersect, Union, ...) are package-level functions;
// Go methods cannot introduce new type parameters.
type Sequence[T any] struct {
	items []T
}

// New creates a Sequence from a variadic list of elements (copied).
func New[T any](items ...T) *Sequence[T] {
	return From(items)
}

// From creates a Sequence from a slice (the slice is copied).
func From[T any](items []T) *Sequence[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Sequence[T]{items: dst}
}

// Empty creates an empty Sequence of type T.
func Empty[T any]() *Sequence[T] {
	return &Sequence[T]{items: []T{}}
}

// All returns a copy of the underlying slice.
func (s *Sequence[T]) All() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns the number of elements.
func (s *Sequence[T]) Count() int { return len(s.items) }

// IsEmpty reports whether the sequence contains no elements.
func (s *Sequence[T]) IsEmpty() bool { return len(s.items) == 0 }

// IsNotEmpty reports whether the sequence has at least one element.
func (s *Sequence[T]) IsNotEmpty() bool { return len(s.items) > 0 }

// Get returns the element at index together with a presence flag.
func (s *Sequence[T]) Get(index int) (T, bool) {
	return Get(s.items, index)
}

// GetOr returns the element at index, or fallback when index is out of range.
func (s *Sequence[T]) GetOr(index int, fallback T) T {
	return GetOr(s.items, index, fallback)
}

// First returns the first element, optionally the first matching match[0].
func (s *Sequence[T]) First(match ...func(T) bool) (T, bool) {
	return First(s.items, match...)
}

// Last returns the last element, optionally the last matching match[0].
func (s *Sequence[T]) Last(match ...func(T) bool) (T, bool) {
	return Last(s.items, match...)
}

// Each calls fn for every element, in order.
func (s *Sequence[T]) Each(fn func(T)) {
	for _, item := range s.items {
		fn(item)
	}
}

// Tap calls fn(s) for side-effects (e.g. logging or debugging) and returns
// s unchanged for further chaining.
func (s *Sequence[T]) Tap(fn func(*Sequence[T])) *Sequence[T] {
	fn(s)
	return s
}

// Dump prints the sequence to stdout and returns s for chaining.
func (s *Sequence[T]) Dump() *Sequence[T] {
	fmt.Println(s.String())
	return s
}

// Contains reports whether at least one element satisfies match.
func (s *Sequence[T]) Contains(match func(T) bool) bool {
	return Contains(s.items, match)
}

// Filter returns a new sequence with only the elements for which keep
// returns true.
func (s *Sequence[T]) Filter(keep func(T) bool) *Sequence[T] {
	return &Sequence[T]{items: Filter(s.items, keep)}
}

// Reject returns a new sequence with the elements for which drop returns
// true removed.
func (s *Sequence[T]) Reject(drop func(T) bool) *Sequence[T] {
	return &Sequence[T]{items: Reject(s.items, drop)}
}

// UniqueBy returns a new sequence keeping the first element observed for
// each distinct key, in first-occurrence order. The key function must return
// values usable as map keys; for a typed key selector use the package-level
// [UniqueBy].
func (s *Sequence[T]) UniqueBy(key func(T) any) *Sequence[T] {
	return &Sequence[T]{items: UniqueBy(s.items, key)}
}

// Reverse returns a new sequence with elements in reversed order.
func (s *Sequence[T]) Reverse() *Sequence[T] {
	return &Sequence[T]{items: Reverse(s.items)}
}

// Sort returns a new sequence sorted by less. The sort is stable.
func (s *Sequence[T]) Sort(less func(a, b T) bool) *Sequence[T] {
	return &Sequence[T]{items: Sort(s.items, less)}
}

// Shuffle returns a new sequence with the same elements in a uniformly
// random order.
func (s *Sequence[T]) Shuffle() *Sequence[T] {
	return &Sequence[T]{items: Shuffle(s.items)}
}

// Push returns a new sequence with items appended.
func (s *Sequence[T]) Push(items ...T) *Sequence[T] {
	out := make([]T, len(s.items)+len(items))
	copy(out, s.items)
	copy(out[len(s.items):], items)
	return &Sequence[T]{items: out}
}

// Concat returns a new sequence with all elements of other appended.
func (s *Sequence[T]) Concat(other *Sequence[T]) *Sequence[T] {
	return s.Push(other.items...)
}

// Partition splits the sequence in two: elements satisfying fn, and the rest.
func (s *Sequence[T]) Partition(fn func(T) bool) (*Sequence[T], *Sequence[T]) {
	pass, fail := Partition(s.items, fn)
	return &Sequence[T]{items: pass}, &Sequence[T]{items: fail}
}

// Chunk partitions the sequence into sub-slices of length size; the last may
// be shorter. Returns [ErrInvalidChunkSize] when size <= 0.
func (s *Sequence[T]) Chunk(size int) ([][]T, error) {
	return Chunk(s.items, size)
}

// String returns a JSON representation of the sequence.
// It implements [fmt.Stringer].
func (s *Sequence[T]) String() string {
	b, err := json.Marshal(s.items)
	if err != nil {
		return fmt.Sprintf("%v", s.items)
	}
	return string(b)
}
