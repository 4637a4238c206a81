// Package lists provides standalone, framework-agnostic helper functions for
// ordered Go slices: safe access, chunking, grouping, deduplication, set-like
// operations, statistical aggregates, and combinatorial enumeration.
//
// # Free functions
//
// All helpers are generic and operate on plain []T values, no wrapper type
// required:
//
//	chunks, _ := lists.Chunk([]int{1, 2, 3, 4, 5}, 2) // → [[1 2] [3 4] [5]]
//	evens := lists.Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
//	top, ok := lists.MaxBy(users, func(u User) int { return u.Score })
//
// Callbacks receive the element only. Operations that need a projection accept
// a key-selector function (func(T) K); keys are compared by equality or, for
// MinBy/MaxBy, by the ordering of K.
//
// # Absence instead of errors
//
// Empty input and out-of-range access return a zero value with a false flag
// rather than failing:
//
//	v, ok := lists.Get(items, 10)   // ok == false when out of range
//	v, ok := lists.First(items)     // ok == false when items is empty
//
// The single checked precondition in this package is the chunk size:
// [Chunk] returns [ErrInvalidChunkSize] when size <= 0.
//
// # Grouping
//
// [GroupBy] returns a [Grouping], which remembers the order in which keys were
// first seen. A plain Go map cannot make that guarantee:
//
//	g := lists.GroupBy([]int{1, 2, 3, 4, 5}, func(n int) int { return n % 2 })
//	g.Keys() // → [1 0], the key 1 was seen before the key 0
//
// # Fluent wrapper
//
// [Sequence] wraps a slice for method chaining over the type-preserving subset
// of these helpers:
//
//	out := lists.New(5, 3, 1, 4, 2).
//	    Filter(func(n int) bool { return n > 1 }).
//	    Sort(func(a, b int) bool { return a < b }).
//	    All() // → [2 3 4 5]
//
// Go generics do not allow methods to introduce new type parameters, so
// type-transforming operations (Map, GroupBy, Reduce, ...) exist only as
// package-level functions.
//
// # Immutability
//
// No function in this package mutates its input; every transformation
// allocates a fresh slice. Inputs may therefore be shared across goroutines
// while helpers run on them.
package lists
