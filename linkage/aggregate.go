package linkage

import "sort"

// TopProduct multiplies the k largest values in sizes. Fewer than k values
// contribute only what exists; an empty slice (or k ≤ 0) yields 1.
// sizes is not modified.
func TopProduct(sizes []int, k int) int64 {
	product := int64(1)
	for _, s := range topSizes(sizes, k) {
		product *= int64(s)
	}

	return product
}

// topSizes returns up to k of the largest values in sizes, largest first.
func topSizes(sizes []int, k int) []int {
	if k <= 0 {
		return []int{}
	}
	sorted := make([]int, len(sizes))
	copy(sorted, sizes)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	if len(sorted) > k {
		sorted = sorted[:k]
	}

	return sorted
}
