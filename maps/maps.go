package maps

import (
	"cmp"
	"sort"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Reading
// ─────────────────────────────────────────────────────────────────────────────

// GetOr returns the value stored under key, or fallback when the key is
// absent. A stored zero value is returned as-is; only a missing key yields
// the fallback.
func GetOr[K comparable, V any](m map[K]V, key K, fallback V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}

// Has reports whether key exists in m.
func Has[K comparable, V any](m map[K]V, key K) bool {
	_, ok := m[key]
	return ok
}

// IsEmpty reports whether m contains no entries.
func IsEmpty[K comparable, V any](m map[K]V) bool {
	return len(m) == 0
}

// IsNotEmpty reports whether m has at least one entry.
func IsNotEmpty[K comparable, V any](m map[K]V) bool {
	return len(m) > 0
}

// ─────────────────────────────────────────────────────────────────────────────
// Reshaping
// ─────────────────────────────────────────────────────────────────────────────

// Merge combines maps left to right into a new map. When the same key appears
// in several maps the rightmost value wins. The inputs are not modified; a
// fresh map is returned even for a single argument.
func Merge[K comparable, V any](ms ...map[K]V) map[K]V {
	size := 0
	for _, m := range ms {
		size += len(m)
	}
	out := make(map[K]V, size)
	for _, m := range ms {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// Pick returns a new map containing only the given keys.
// Keys absent from m are ignored.
func Pick[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	out := make(map[K]V, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Omit returns a shallow copy of m without the given keys.
func Omit[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	drop := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		if _, skip := drop[k]; !skip {
			out[k] = v
		}
	}
	return out
}

// MapValues applies fn to every value and returns a new map with the same
// keys.
func MapValues[K comparable, V, U any](m map[K]V, fn func(V) U) map[K]U {
	out := make(map[K]U, len(m))
	for k, v := range m {
		out[k] = fn(v)
	}
	return out
}

// MapKeys applies fn to every key and returns a new map with the same values.
// When fn maps two keys to the same result, which entry survives is
// unspecified.
func MapKeys[K comparable, V any, L comparable](m map[K]V, fn func(K) L) map[L]V {
	out := make(map[L]V, len(m))
	for k, v := range m {
		out[fn(k)] = v
	}
	return out
}

// Invert swaps keys and values (requires comparable V). When several keys
// share a value, which key survives is unspecified.
func Invert[K, V comparable](m map[K]V) map[V]K {
	out := make(map[V]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// LowerKeys returns a copy of a string-keyed map with every key lower-cased.
// When two keys collide after lowering, which entry survives is unspecified.
func LowerKeys[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[strings.ToLower(k)] = v
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Listing
// ─────────────────────────────────────────────────────────────────────────────

// Keys returns the keys of m in unspecified order.
func Keys[K comparable, V any](m map[K]V) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// Values returns the values of m in unspecified order.
func Values[K comparable, V any](m map[K]V) []V {
	out := make([]V, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	out := Keys(m)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// In-place update
// ─────────────────────────────────────────────────────────────────────────────

// Upsert applies update to the value stored under key, or inserts fallback
// when the key is absent, and returns the value now stored. This is the only
// function in the package that modifies its input. The map itself is not
// safe for concurrent use; callers synchronise externally.
func Upsert[K comparable, V any](m map[K]V, key K, update func(V) V, fallback V) V {
	v, ok := m[key]
	if ok {
		v = update(v)
	} else {
		v = fallback
	}
	m[key] = v
	return v
}
