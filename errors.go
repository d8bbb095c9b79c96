package mutinfo

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates the matrix has zero rows or zero columns.
	ErrEmptyInput = errors.New("mutinfo: matrix must have at least one row and one column")
	// ErrRaggedMatrix indicates rows of differing lengths.
	ErrRaggedMatrix = errors.New("mutinfo: all rows must have the same length")
)

// DimensionMismatchError reports a matrix whose row count differs from the
// number of supplied labels.
type DimensionMismatchError struct {
	MatrixRows int
	LabelCount int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("mutinfo: matrix has %d rows but %d labels provided",
		e.MatrixRows, e.LabelCount)
}
