package mutinfo

import (
	"fmt"
	"runtime"

	"gonum.org/v1/gonum/mat"
)

// DefaultBins is the number of quantile bins used when Config.Bins is 0.
const DefaultBins = 10

// ProgressFunc receives advisory progress updates during a pairwise
// computation: done pairs completed out of total. Calls are serialized and
// done is nondecreasing from 0 to total. Progress has no effect on results.
type ProgressFunc func(done, total int)

// Config controls pairwise mutual information computation.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Bins is the number of quantile bins each row is discretized into.
	// Must be >= 2. 0 means DefaultBins.
	Bins int

	// Workers controls the number of goroutines for the pair fan-out.
	// 0 means runtime.NumCPU(); values <= 1 run sequentially. The result
	// is identical for every worker count.
	Workers int

	// Progress, if non-nil, is called once with (0, total) before any pair
	// is scheduled and once per completed pair. Optional.
	Progress ProgressFunc
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{Bins: DefaultBins}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Bins == 0 {
		cfg.Bins = DefaultBins
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.Bins < 2 {
		return fmt.Errorf("mutinfo: Bins must be >= 2, got %d", cfg.Bins)
	}
	return nil
}

// checkRectangular verifies all rows have the same length as the first.
func checkRectangular(matrix [][]float64) error {
	cols := len(matrix[0])
	for _, row := range matrix[1:] {
		if len(row) != cols {
			return ErrRaggedMatrix
		}
	}
	return nil
}

// PairwiseMI computes the mutual information between every unordered pair of
// matrix rows, including each row with itself, and returns a symmetric table
// keyed by the supplied labels: result[a][b] == result[b][a] for distinct
// labels, and result[l][l] is the entropy of row l's binned distribution.
// Rows are genes, columns are samples; matrix is read-only for the duration
// of the call and never retained.
//
// Label uniqueness is not enforced. Scores are computed by row index, but
// the returned table is keyed by label, so duplicate labels collapse to one
// entry whose values come from the highest-index row carrying that label.
// Use [PairwiseMIMatrix] when labels may repeat.
func PairwiseMI(matrix [][]float64, labels []string, cfg Config) (map[string]map[string]float64, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return nil, ErrEmptyInput
	}
	if len(matrix) != len(labels) {
		return nil, &DimensionMismatchError{MatrixRows: len(matrix), LabelCount: len(labels)}
	}
	if err := checkRectangular(matrix); err != nil {
		return nil, err
	}

	scores := computeAllPairScores(matrix, cfg.Bins, cfg.Workers, cfg.Progress)

	// Single-threaded merge in pair-index order. Inner maps are created on
	// first touch; off-diagonal scores are mirrored to keep the table
	// symmetric.
	n := len(labels)
	result := make(map[string]map[string]float64, n)
	k := 0
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s := scores[k]
			k++

			inner, ok := result[labels[i]]
			if !ok {
				inner = make(map[string]float64, n)
				result[labels[i]] = inner
			}
			inner[labels[j]] = s

			if i != j {
				mirror, ok := result[labels[j]]
				if !ok {
					mirror = make(map[string]float64, n)
					result[labels[j]] = mirror
				}
				mirror[labels[i]] = s
			}
		}
	}
	return result, nil
}

// PairwiseMIMatrix computes the same pairwise scores as [PairwiseMI] but
// returns them as a dense symmetric matrix indexed by row, with the
// self-information scores on the diagonal. No labels are involved, so
// duplicate gene names cannot collide.
func PairwiseMIMatrix(matrix [][]float64, cfg Config) (*mat.SymDense, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return nil, ErrEmptyInput
	}
	if err := checkRectangular(matrix); err != nil {
		return nil, err
	}

	scores := computeAllPairScores(matrix, cfg.Bins, cfg.Workers, cfg.Progress)

	n := len(matrix)
	out := mat.NewSymDense(n, nil)
	k := 0
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			out.SetSym(i, j, scores[k])
			k++
		}
	}
	return out, nil
}
