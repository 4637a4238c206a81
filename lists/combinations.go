package lists

// Combinations returns every sub-sequence of the given length chosen from
// items without replacement. length is optional and defaults to 2.
//
// Elements inside each combination keep their original relative order, and
// the combinations themselves are enumerated in lexicographic index order:
//
//	lists.Combinations([]int{1, 2, 3}) // → [[1 2] [1 3] [2 3]]
//
// The result has exactly C(len(items), length) entries. Returns an empty
// result, not an error, when length < 1 or length > len(items).
func Combinations[T any](items []T, length ...int) [][]T {
	n := len(items)
	k := 2
	if len(length) > 0 {
		k = length[0]
	}
	if k < 1 || k > n {
		return [][]T{}
	}

	// idx holds the current combination as strictly increasing indices into
	// items; advancing it walks the combinations in lexicographic order.
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	out := make([][]T, 0)
	for {
		comb := make([]T, k)
		for i, j := range idx {
			comb[i] = items[j]
		}
		out = append(out, comb)

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return out
}
