package mutinfo

import "testing"

func TestUpperTrianglePairs(t *testing.T) {
	pairs := upperTrianglePairs(3)
	want := []pair{{0, 0}, {0, 1}, {0, 2}, {1, 1}, {1, 2}, {2, 2}}
	if len(pairs) != len(want) {
		t.Fatalf("expected %d pairs, got %d", len(want), len(pairs))
	}
	for k := range want {
		if pairs[k] != want[k] {
			t.Errorf("pairs[%d] = %v, want %v", k, pairs[k], want[k])
		}
	}
}

func TestComputeAllPairScores_ParallelMatchesSequential(t *testing.T) {
	matrix := generateTestMatrix(9, 50, 13)
	sequential := computeAllPairScores(matrix, DefaultBins, 1, nil)

	for _, workers := range []int{2, 4, 7, 32} {
		parallel := computeAllPairScores(matrix, DefaultBins, workers, nil)
		if len(parallel) != len(sequential) {
			t.Fatalf("workers=%d: length %d, want %d", workers, len(parallel), len(sequential))
		}
		for k := range sequential {
			if parallel[k] != sequential[k] {
				t.Errorf("workers=%d: scores[%d] = %v, want %v",
					workers, k, parallel[k], sequential[k])
			}
		}
	}
}

func TestComputeAllPairScores_MoreWorkersThanPairs(t *testing.T) {
	matrix := generateTestMatrix(2, 20, 21)
	scores := computeAllPairScores(matrix, DefaultBins, 64, nil)
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores for 2 rows, got %d", len(scores))
	}
	sequential := computeAllPairScores(matrix, DefaultBins, 1, nil)
	for k, s := range scores {
		if s != sequential[k] {
			t.Errorf("scores[%d] = %v, want %v", k, s, sequential[k])
		}
	}
}

func TestComputeAllPairScores_SingleRow(t *testing.T) {
	matrix := [][]float64{ramp(20)}
	scores := computeAllPairScores(matrix, DefaultBins, 8, nil)
	if len(scores) != 1 {
		t.Fatalf("expected 1 score for a single row, got %d", len(scores))
	}
	if want := MutualInformation(matrix[0], matrix[0], DefaultBins); scores[0] != want {
		t.Errorf("scores[0] = %v, want %v", scores[0], want)
	}
}
