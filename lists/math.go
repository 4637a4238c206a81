package lists

import (
	"math"
	"sort"
)

// Number is the constraint satisfied by Go's built-in numeric types and any
// type defined on top of them.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum returns the sum of all elements, in the element type.
// An empty slice sums to zero.
func Sum[T Number](items []T) T {
	var total T
	for _, v := range items {
		total += v
	}
	return total
}

// Average returns the arithmetic mean of items as a float64.
// An empty slice averages to 0 rather than failing; callers that need to
// distinguish "no data" from "mean of zero" should check the length first.
func Average[T Number](items []T) float64 {
	if len(items) == 0 {
		return 0
	}
	var total float64
	for _, v := range items {
		total += float64(v)
	}
	return total / float64(len(items))
}

// Median returns the middle value of items: the central element for an odd
// length, or the mean of the two central elements for an even length.
// The input is not mutated; sorting happens on a copy. Returns 0 for an
// empty slice.
func Median[T Number](items []T) float64 {
	n := len(items)
	if n == 0 {
		return 0
	}
	sorted := make([]T, n)
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return (float64(sorted[n/2-1]) + float64(sorted[n/2])) / 2
}

// StdDev returns the sample standard deviation of items, using Bessel's
// correction (the sum of squared deviations is divided by n-1, not n).
// Returns 0 when len(items) <= 1, where the sample deviation is undefined.
func StdDev[T Number](items []T) float64 {
	n := len(items)
	if n <= 1 {
		return 0
	}
	mean := Average(items)
	var sumSq float64
	for _, v := range items {
		d := float64(v) - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(n-1))
}
