package tensor

import "fmt"

// The error values below are returned by constructors and carried by the
// panics raised from operations. All shape preconditions are checked before
// any output buffer is allocated, so a failing operation never produces a
// partial result.

// ShapeError reports an operand shape that is incompatible with an
// operation: a data/shape length mismatch at construction, a wrong-shaped
// replacement on update, or a matmul contraction mismatch.
type ShapeError struct {
	Op  string
	Msg string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("tensor: %s: %s", e.Op, e.Msg)
}

// BroadcastError reports two shapes that cannot be aligned under the
// broadcasting rule: a non-1, non-equal dimension pair.
type BroadcastError struct {
	A, B Shape
	Dim  int
}

func (e *BroadcastError) Error() string {
	return fmt.Sprintf("tensor: shapes %v and %v are not broadcastable (dimension %d)", e.A, e.B, e.Dim)
}

// RankError reports an operation invoked on an array of unsupported rank.
type RankError struct {
	Op   string
	Rank int
	Min  int
}

func (e *RankError) Error() string {
	return fmt.Sprintf("tensor: %s: rank %d array (need rank >= %d)", e.Op, e.Rank, e.Min)
}

// ScalarError reports an attempt to read a multi-element array as a single
// scalar value.
type ScalarError struct {
	Shape Shape
}

func (e *ScalarError) Error() string {
	return fmt.Sprintf("tensor: array of shape %v cannot be converted to a scalar", e.Shape)
}
