package mutinfo

import "sort"

// Discretize maps value into one of bins quantile buckets derived from
// sortedRef, the ascending-sorted sample vector the value came from.
// The cut position for boundary i is (i*n)/bins; the value belongs to bin
// i-1 at the first boundary satisfying value <= sortedRef[cut], and to the
// last bin when no boundary matches. Bin assignments are deterministic for
// a deterministically sorted reference. An empty reference vector yields
// bin 0.
func Discretize(value float64, sortedRef []float64, bins int) int {
	n := len(sortedRef)
	if n == 0 {
		return 0
	}
	for i := 1; i < bins; i++ {
		cut := i * n / bins
		if cut < n && value <= sortedRef[cut] {
			return i - 1
		}
	}
	return bins - 1
}

// binRow assigns every sample in row to its quantile bin. Boundaries are
// derived from the row itself, independent of any pairing, so a row's bin
// vector is computed once and reused across all pairs involving it.
func binRow(row []float64, bins int) []int {
	sorted := make([]float64, len(row))
	copy(sorted, row)
	sort.Float64s(sorted)

	out := make([]int, len(row))
	for i, v := range row {
		out[i] = Discretize(v, sorted, bins)
	}
	return out
}
