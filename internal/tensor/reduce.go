package tensor

import (
	"math"
	"sort"
)

// Reductions collapse the listed axes. An empty axis list reduces over all
// axes to a single element (or to an all-ones shape with keepDims).
//
// The reduction runs axis by axis, largest axis index first, so remaining
// axis indices stay valid throughout. Each pass seeds an accumulator with
// the operation's identity and folds source elements into their destination
// slots through two precomputed strides: the "jump" stride (elements
// between consecutive positions along the reduced axis) and the batch
// stride (elements per block that shares a batch prefix). No index tuples
// are materialized.

// Sum reduces by addition over the given axes.
func (a *NDArray) Sum(axes []int, keepDims bool) *NDArray {
	return a.reduce("sum", axes, keepDims, 0, func(acc, v float64) float64 { return acc + v })
}

// Mean is Sum divided by the product of the reduced axes' original sizes.
func (a *NDArray) Mean(axes []int, keepDims bool) *NDArray {
	axes = a.normalizeAxes("mean", axes)
	count := 1
	for _, ax := range axes {
		count *= a.shape[ax]
	}
	return a.reduce("mean", axes, keepDims, 0, func(acc, v float64) float64 { return acc + v }).
		MulScalar(1 / float64(count))
}

// Max reduces by maximum over the given axes.
func (a *NDArray) Max(axes []int, keepDims bool) *NDArray {
	return a.reduce("max", axes, keepDims, math.Inf(-1), math.Max)
}

// Min reduces by minimum over the given axes.
func (a *NDArray) Min(axes []int, keepDims bool) *NDArray {
	return a.reduce("min", axes, keepDims, math.Inf(1), math.Min)
}

// normalizeAxes validates the axis list and returns it deduplicated and
// sorted in descending order; an empty list expands to all axes.
func (a *NDArray) normalizeAxes(op string, axes []int) []int {
	if len(axes) == 0 {
		all := make([]int, a.Rank())
		for i := range all {
			all[i] = a.Rank() - 1 - i
		}
		return all
	}

	seen := make(map[int]struct{}, len(axes))
	norm := make([]int, 0, len(axes))
	for _, ax := range axes {
		if ax < 0 || ax >= a.Rank() {
			panic(&RankError{Op: op, Rank: ax, Min: a.Rank()})
		}
		if _, dup := seen[ax]; dup {
			continue
		}
		seen[ax] = struct{}{}
		norm = append(norm, ax)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(norm)))
	return norm
}

func (a *NDArray) reduce(op string, axes []int, keepDims bool, identity float64, fn func(acc, v float64) float64) *NDArray {
	axes = a.normalizeAxes(op, axes)

	cur := a
	for _, ax := range axes {
		cur = reduceAxis(cur, ax, identity, fn)
	}
	if keepDims {
		return cur
	}

	// Drop the reduced (now size-1) axes; an empty result shape collapses
	// to the single-element shape [1].
	reduced := make(map[int]struct{}, len(axes))
	for _, ax := range axes {
		reduced[ax] = struct{}{}
	}
	outShape := make(Shape, 0, cur.Rank()-len(axes))
	for i, dim := range cur.shape {
		if _, ok := reduced[i]; !ok {
			outShape = append(outShape, dim)
		}
	}
	if len(outShape) == 0 {
		outShape = Shape{1}
	}
	return &NDArray{shape: outShape, data: cur.data}
}

// reduceAxis folds one axis down to size 1, keeping the rank.
func reduceAxis(src *NDArray, axis int, identity float64, fn func(acc, v float64) float64) *NDArray {
	dim := src.shape[axis]

	jump := 1
	for _, d := range src.shape[axis+1:] {
		jump *= d
	}
	batchStride := dim * jump
	batches := len(src.data) / batchStride

	outShape := src.shape.Clone()
	outShape[axis] = 1
	out := Full(outShape, identity)

	for b := 0; b < batches; b++ {
		srcBase := b * batchStride
		dstBase := b * jump
		for j := 0; j < dim; j++ {
			rowBase := srcBase + j*jump
			for k := 0; k < jump; k++ {
				out.data[dstBase+k] = fn(out.data[dstBase+k], src.data[rowBase+k])
			}
		}
	}
	return out
}
