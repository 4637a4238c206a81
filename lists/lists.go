package lists

import (
	"cmp"
	"fmt"
	"math/rand"
	"sort"
)

// ─────────────────────────────────────────────────────────────────────────────
// Safe access
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the element at index together with a presence flag.
// Returns the zero value and false when index is out of range; it never
// panics on a bad index.
func Get[T any](items []T, index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(items) {
		return zero, false
	}
	return items[index], true
}

// GetOr returns the element at index, or fallback when index is out of range.
func GetOr[T any](items []T, index int, fallback T) T {
	if v, ok := Get(items, index); ok {
		return v
	}
	return fallback
}

// First returns the first element, optionally the first matching match[0].
// Returns the zero value and false when items is empty or no element matches.
func First[T any](items []T, match ...func(T) bool) (T, bool) {
	var zero T
	if len(match) > 0 {
		for _, item := range items {
			if match[0](item) {
				return item, true
			}
		}
		return zero, false
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// Last returns the last element, optionally the last matching match[0].
// Returns the zero value and false when items is empty or no element matches.
func Last[T any](items []T, match ...func(T) bool) (T, bool) {
	var zero T
	if len(match) > 0 {
		var found T
		matched := false
		for _, item := range items {
			if match[0](item) {
				found = item
				matched = true
			}
		}
		return found, matched
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching & membership
// ─────────────────────────────────────────────────────────────────────────────

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](items []T, value T) int {
	for i, item := range items {
		if item == value {
			return i
		}
	}
	return -1
}

// Contains reports whether at least one element satisfies match.
func Contains[T any](items []T, match func(T) bool) bool {
	for _, item := range items {
		if match(item) {
			return true
		}
	}
	return false
}

// ContainsValue reports whether items contains value.
func ContainsValue[T comparable](items []T, value T) bool {
	return IndexOf(items, value) >= 0
}

// ContainsAny reports whether items shares at least one element, under
// equality, with others.
func ContainsAny[T comparable](items, others []T) bool {
	if len(items) == 0 || len(others) == 0 {
		return false
	}
	set := make(map[T]struct{}, len(others))
	for _, v := range others {
		set[v] = struct{}{}
	}
	for _, v := range items {
		if _, ok := set[v]; ok {
			return true
		}
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// Filter returns the elements for which keep returns true.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns the elements for which drop returns false.
// It is the complement of [Filter].
func Reject[T any](items []T, drop func(T) bool) []T {
	return Filter(items, func(item T) bool { return !drop(item) })
}

// Reduce folds items into a single value of type U, starting from initial.
func Reduce[T, U any](items []T, fn func(acc U, item T) U, initial U) U {
	acc := initial
	for _, item := range items {
		acc = fn(acc, item)
	}
	return acc
}

// Partition splits items into two slices: those satisfying fn and the rest.
// Relative order is preserved in both halves.
func Partition[T any](items []T, fn func(T) bool) ([]T, []T) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for _, item := range items {
		if fn(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return pass, fail
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// Sort returns a sorted copy of items using less.
// The sort is stable: equal elements preserve their original order.
func Sort[T any](items []T, less func(a, b T) bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Deduplication & set operations
// ─────────────────────────────────────────────────────────────────────────────

// Unique returns a new slice with duplicate elements removed, preserving the
// first occurrence of each value. Applying Unique to its own output returns
// an equal slice.
func Unique[T comparable](items []T) []T {
	return UniqueBy(items, func(item T) T { return item })
}

// UniqueBy returns a new slice keeping only the first element observed for
// each distinct key, in first-occurrence order.
func UniqueBy[T any, K comparable](items []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// Intersect returns, in the order of items, every element that also appears
// in others. Duplicates in items are kept per occurrence; membership is
// tested against the set of distinct values in others.
func Intersect[T comparable](items, others []T) []T {
	set := make(map[T]struct{}, len(others))
	for _, v := range others {
		set[v] = struct{}{}
	}
	out := make([]T, 0)
	for _, item := range items {
		if _, ok := set[item]; ok {
			out = append(out, item)
		}
	}
	return out
}

// Union returns all elements of items in order (duplicates included),
// followed by each distinct value of others that is not already present in
// items, at the position of its first occurrence. Union(a, nil) is a copy
// of a.
func Union[T comparable](items, others []T) []T {
	out := make([]T, 0, len(items)+len(others))
	out = append(out, items...)
	seen := make(map[T]struct{}, len(items)+len(others))
	for _, v := range items {
		seen[v] = struct{}{}
	}
	for _, v := range others {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Chunking
// ─────────────────────────────────────────────────────────────────────────────

// Chunk partitions items into consecutive sub-slices of length size; the last
// chunk may be shorter. Concatenating the chunks in order reconstructs items
// exactly, and the number of chunks is ceil(len(items)/size).
//
// Returns [ErrInvalidChunkSize] when size <= 0. Each chunk is a copy, so
// callers may retain or modify chunks without aliasing the input.
func Chunk[T any](items []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChunkSize, size)
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		chunk := make([]T, end-i)
		copy(chunk, items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Shuffle returns a copy of items in a uniformly random order.
// The input is never mutated.
func Shuffle[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Selector-based extremes
// ─────────────────────────────────────────────────────────────────────────────

// MaxBy returns the element whose key, extracted by key, is greatest under
// the ordering of K. When several elements share the greatest key, the
// earliest one wins. Returns the zero value and false when items is empty.
func MaxBy[T any, K cmp.Ordered](items []T, key func(T) K) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	best, bestKey := items[0], key(items[0])
	for _, item := range items[1:] {
		if k := key(item); k > bestKey {
			best, bestKey = item, k
		}
	}
	return best, true
}

// MinBy returns the element whose key, extracted by key, is least under the
// ordering of K. When several elements share the least key, the earliest one
// wins. Returns the zero value and false when items is empty.
func MinBy[T any, K cmp.Ordered](items []T, key func(T) K) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	best, bestKey := items[0], key(items[0])
	for _, item := range items[1:] {
		if k := key(item); k < bestKey {
			best, bestKey = item, k
		}
	}
	return best, true
}

// MostFrequent returns the element with the highest occurrence count.
// When several values are tied for the highest count, the value whose first
// occurrence comes earliest in items wins; the result does not depend on map
// iteration order. Returns the zero value and false when items is empty.
func MostFrequent[T comparable](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	counts := make(map[T]int, len(items))
	firstAt := make(map[T]int, len(items))
	for i, v := range items {
		if _, ok := counts[v]; !ok {
			firstAt[v] = i
		}
		counts[v]++
	}
	best := items[0]
	for v, n := range counts {
		if n > counts[best] || (n == counts[best] && firstAt[v] < firstAt[best]) {
			best = v
		}
	}
	return best, true
}
