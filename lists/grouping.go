package lists

// Grouping is the result of [GroupBy]: a mapping from key to the elements
// that produced it, which also remembers the order in which keys were first
// seen. Plain Go maps iterate in a randomised order, so a bare map[K][]T
// cannot promise anything about key order; Grouping can.
//
// Within each group, elements keep the relative order they had in the input.
type Grouping[K comparable, T any] struct {
	keys   []K
	groups map[K][]T
}

// GroupBy groups items by the key extracted by key.
//
//	g := lists.GroupBy([]int{1, 2, 3, 4, 5}, func(n int) int { return n % 2 })
//	g.Keys()  // → [1 0]  (1 appeared first)
//	g.Get(1)  // → [1 3 5]
//	g.Get(0)  // → [2 4]
func GroupBy[T any, K comparable](items []T, key func(T) K) *Grouping[K, T] {
	g := &Grouping[K, T]{groups: make(map[K][]T)}
	for _, item := range items {
		k := key(item)
		if _, ok := g.groups[k]; !ok {
			g.keys = append(g.keys, k)
		}
		g.groups[k] = append(g.groups[k], item)
	}
	return g
}

// Keys returns the group keys in first-appearance order.
// The returned slice is a copy.
func (g *Grouping[K, T]) Keys() []K {
	out := make([]K, len(g.keys))
	copy(out, g.keys)
	return out
}

// Get returns the elements grouped under key, in input order.
// Returns nil for a key that was never produced.
func (g *Grouping[K, T]) Get(key K) []T {
	return g.groups[key]
}

// Has reports whether key was produced by at least one element.
func (g *Grouping[K, T]) Has(key K) bool {
	_, ok := g.groups[key]
	return ok
}

// Len returns the number of distinct keys.
func (g *Grouping[K, T]) Len() int { return len(g.keys) }

// Each calls fn once per group, in first-appearance key order.
func (g *Grouping[K, T]) Each(fn func(key K, group []T)) {
	for _, k := range g.keys {
		fn(k, g.groups[k])
	}
}

// Map returns the grouping as a plain map. Key order is lost; use [Grouping.Keys]
// or [Grouping.Each] when order matters. The groups themselves are not copied.
func (g *Grouping[K, T]) Map() map[K][]T {
	out := make(map[K][]T, len(g.groups))
	for k, v := range g.groups {
		out[k] = v
	}
	return out
}
