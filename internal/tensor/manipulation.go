package tensor

import (
	"fmt"
	"sort"
)

// Squeeze removes the listed size-1 axes. Axes that are out of range or not
// of size 1 are ignored. With no axes given, every size-1 axis is removed.
// A shape that would become empty collapses to [1].
func (a *NDArray) Squeeze(axes ...int) *NDArray {
	drop := func(i int) bool { return a.shape[i] == 1 }
	if len(axes) > 0 {
		listed := make(map[int]struct{}, len(axes))
		for _, ax := range axes {
			if ax >= 0 && ax < a.Rank() {
				listed[ax] = struct{}{}
			}
		}
		drop = func(i int) bool {
			_, ok := listed[i]
			return ok && a.shape[i] == 1
		}
	}

	outShape := make(Shape, 0, a.Rank())
	for i, dim := range a.shape {
		if !drop(i) {
			outShape = append(outShape, dim)
		}
	}
	if len(outShape) == 0 {
		outShape = Shape{1}
	}

	out := a.Clone()
	out.shape = outShape
	return out
}

// Unsqueeze inserts a size-1 axis at the given position.
func (a *NDArray) Unsqueeze(axis int) *NDArray {
	if axis < 0 || axis > a.Rank() {
		panic(&RankError{Op: "unsqueeze", Rank: axis, Min: a.Rank() + 1})
	}

	outShape := make(Shape, 0, a.Rank()+1)
	outShape = append(outShape, a.shape[:axis]...)
	outShape = append(outShape, 1)
	outShape = append(outShape, a.shape[axis:]...)

	out := a.Clone()
	out.shape = outShape
	return out
}

// Reshape returns the same elements under a new shape.
// Fails with *ShapeError if the element counts differ.
func (a *NDArray) Reshape(shape Shape) *NDArray {
	if err := shape.Validate(); err != nil {
		panic(err)
	}
	if shape.NumElements() != len(a.data) {
		panic(&ShapeError{
			Op:  "reshape",
			Msg: fmt.Sprintf("cannot reshape %v (%d elements) into %v (%d elements)", a.shape, len(a.data), shape, shape.NumElements()),
		})
	}

	out := a.Clone()
	out.shape = shape.Clone()
	return out
}

// Permute reorders the axes according to order, which must be a permutation
// of 0..rank-1.
func (a *NDArray) Permute(order []int) *NDArray {
	n := a.Rank()
	if len(order) != n {
		panic(&ShapeError{Op: "permute", Msg: fmt.Sprintf("order %v does not match rank %d", order, n)})
	}
	check := append([]int(nil), order...)
	sort.Ints(check)
	for i, v := range check {
		if v != i {
			panic(&ShapeError{Op: "permute", Msg: fmt.Sprintf("order %v is not a permutation of 0..%d", order, n-1)})
		}
	}

	outShape := make(Shape, n)
	for d := range order {
		outShape[d] = a.shape[order[d]]
	}

	out := Zeros(outShape)
	srcStrides := a.shape.Strides()
	dstStrides := outShape.Strides()

	coords := make([]int, n)
	for i, v := range a.data {
		rem := i
		for d := 0; d < n; d++ {
			coords[d] = rem / srcStrides[d]
			rem %= srcStrides[d]
		}
		dst := 0
		for d := 0; d < n; d++ {
			dst += coords[order[d]] * dstStrides[d]
		}
		out.data[dst] = v
	}
	return out
}

// Transpose swaps two axes. With no arguments it swaps the last two;
// negative indices count from the end.
func (a *NDArray) Transpose(axes ...int) *NDArray {
	n := a.Rank()
	i, j := n-1, n-2
	switch len(axes) {
	case 0:
	case 2:
		i, j = axes[0], axes[1]
		if i < 0 {
			i += n
		}
		if j < 0 {
			j += n
		}
	default:
		panic(&RankError{Op: "transpose", Rank: len(axes), Min: 2})
	}
	if i < 0 || i >= n || j < 0 || j >= n {
		panic(&RankError{Op: "transpose", Rank: n, Min: 2})
	}

	order := make([]int, n)
	for d := range order {
		order[d] = d
	}
	order[i], order[j] = order[j], order[i]
	return a.Permute(order)
}

// T reverses all axes.
func (a *NDArray) T() *NDArray {
	n := a.Rank()
	order := make([]int, n)
	for d := range order {
		order[d] = n - 1 - d
	}
	return a.Permute(order)
}
