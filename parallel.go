package mutinfo

import "sync"

// pair identifies one unordered row pair (i <= j) of the upper triangle,
// diagonal included.
type pair struct {
	i, j int
}

// upperTrianglePairs enumerates all unordered row pairs in row-major order.
// A pair's index in the slice is its slot in the flat score slice, which
// makes the merge pass order-independent of how workers finished.
func upperTrianglePairs(n int) []pair {
	pairs := make([]pair, 0, n*(n+1)/2)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			pairs = append(pairs, pair{i, j})
		}
	}
	return pairs
}

// progressTracker serializes advisory progress updates from the workers.
// It carries no correctness obligation; the score path never waits on it.
type progressTracker struct {
	mu    sync.Mutex
	done  int
	total int
	sink  ProgressFunc
}

// newProgressTracker emits the initial (0, total) observation before any
// pair is scheduled.
func newProgressTracker(total int, sink ProgressFunc) *progressTracker {
	if sink != nil {
		sink(0, total)
	}
	return &progressTracker{total: total, sink: sink}
}

func (t *progressTracker) tick() {
	if t.sink == nil {
		return
	}
	t.mu.Lock()
	t.done++
	t.sink(t.done, t.total)
	t.mu.Unlock()
}

// computeAllPairScores evaluates MI for every unordered row pair and returns
// the flat upper-triangle score slice in pair-index order. Each row is binned
// once up front; workers claim contiguous ranges of the pair list and write
// into non-overlapping slots of the shared score slice, so no synchronization
// is needed for the results. workers <= 1 falls back to a sequential loop
// with bitwise-identical output.
func computeAllPairScores(matrix [][]float64, bins, workers int, sink ProgressFunc) []float64 {
	n := len(matrix)

	binned := make([][]int, n)
	for i, row := range matrix {
		binned[i] = binRow(row, bins)
	}

	pairs := upperTrianglePairs(n)
	scores := make([]float64, len(pairs))
	tracker := newProgressTracker(len(pairs), sink)

	if workers <= 1 || len(pairs) <= 1 {
		for k, p := range pairs {
			scores[k] = miFromBins(binned[p.i], binned[p.j], bins)
			tracker.tick()
		}
		return scores
	}

	var wg sync.WaitGroup

	pairsPerWorker := (len(pairs) + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * pairsPerWorker
		end := start + pairsPerWorker
		if end > len(pairs) {
			end = len(pairs)
		}
		if start >= len(pairs) {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for k := start; k < end; k++ {
				p := pairs[k]
				scores[k] = miFromBins(binned[p.i], binned[p.j], bins)
				tracker.tick()
			}
		}(start, end)
	}

	wg.Wait()
	return scores
}
