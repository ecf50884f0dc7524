// Package tensor implements NDArray, a dense n-dimensional float64 array
// with broadcasting-aware arithmetic, reductions, shape manipulation, and
// batched matrix multiplication.
//
// NDArray is the numeric substrate of the autodiff engine and has no
// dependency on the rest of the module. Constructors return errors;
// operations fail fast by panicking with the typed error values declared in
// errors.go (*ShapeError, *BroadcastError, *RankError, *ScalarError), in
// the same spirit as gonum/mat.
package tensor

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"
)

// NDArray is a dense n-dimensional array: a flat row-major float64 buffer
// plus an explicit shape. len(data) == shape.NumElements() always holds.
//
// Operations return new arrays; the buffer is only written in place through
// Fill and Set.
type NDArray struct {
	shape Shape
	data  []float64
}

// New creates an NDArray from flat row-major values and a shape.
// Fails with *ShapeError if the value count does not match the shape, and
// with *RankError for a rank-0 shape.
func New(data []float64, shape Shape) (*NDArray, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.NumElements() {
		return nil, &ShapeError{
			Op:  "new",
			Msg: fmt.Sprintf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data)),
		}
	}

	buf := make([]float64, len(data))
	copy(buf, data)
	return &NDArray{shape: shape.Clone(), data: buf}, nil
}

// FromScalar creates a single-element array with implicit shape [1].
func FromScalar(v float64) *NDArray {
	return &NDArray{shape: Shape{1}, data: []float64{v}}
}

// Zeros creates a zero-filled array of the given shape.
func Zeros(shape Shape) *NDArray {
	if err := shape.Validate(); err != nil {
		panic(err)
	}
	return &NDArray{shape: shape.Clone(), data: make([]float64, shape.NumElements())}
}

// Ones creates an array of the given shape filled with ones.
func Ones(shape Shape) *NDArray {
	return Full(shape, 1)
}

// Full creates an array of the given shape with every element set to value.
func Full(shape Shape, value float64) *NDArray {
	out := Zeros(shape)
	out.Fill(value)
	return out
}

// Rand creates an array of the given shape with values drawn uniformly
// from [0, 1).
func Rand(shape Shape) *NDArray {
	out := Zeros(shape)
	u := distuv.Uniform{Min: 0, Max: 1}
	for i := range out.data {
		out.data[i] = u.Rand()
	}
	return out
}

// Shape returns the array's shape.
func (a *NDArray) Shape() Shape {
	return a.shape
}

// Rank returns the number of dimensions.
func (a *NDArray) Rank() int {
	return len(a.shape)
}

// NumElements returns the total number of elements.
func (a *NDArray) NumElements() int {
	return len(a.data)
}

// Data returns the flat row-major buffer.
// WARNING: modifications to the returned slice modify the array.
func (a *NDArray) Data() []float64 {
	return a.data
}

// Clone creates a deep copy of the array.
func (a *NDArray) Clone() *NDArray {
	buf := make([]float64, len(a.data))
	copy(buf, a.data)
	return &NDArray{shape: a.shape.Clone(), data: buf}
}

// Fill sets every element to value, in place.
func (a *NDArray) Fill(value float64) {
	for i := range a.data {
		a.data[i] = value
	}
}

// At returns the element at the given indices.
// Panics if the index count or any index is out of range.
func (a *NDArray) At(indices ...int) float64 {
	if len(indices) != len(a.shape) {
		panic(&RankError{Op: "at", Rank: len(indices), Min: len(a.shape)})
	}

	offset := 0
	strides := a.shape.Strides()
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			panic(&ShapeError{Op: "at", Msg: fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, a.shape[i])})
		}
		offset += idx * strides[i]
	}
	return a.data[offset]
}

// Set writes value at the given indices, in place.
func (a *NDArray) Set(value float64, indices ...int) {
	if len(indices) != len(a.shape) {
		panic(&RankError{Op: "set", Rank: len(indices), Min: len(a.shape)})
	}

	offset := 0
	strides := a.shape.Strides()
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			panic(&ShapeError{Op: "set", Msg: fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, a.shape[i])})
		}
		offset += idx * strides[i]
	}
	a.data[offset] = value
}

// Item returns the value of a single-element array.
// Fails with *ScalarError if the array holds more than one element.
func (a *NDArray) Item() (float64, error) {
	if len(a.data) != 1 {
		return 0, &ScalarError{Shape: a.shape.Clone()}
	}
	return a.data[0], nil
}

// Equal reports whether two arrays have identical shapes and values.
func (a *NDArray) Equal(b *NDArray) bool {
	if !a.shape.Equal(b.shape) {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

// String renders the array as nested brackets honoring its shape.
// The output is for logging and debugging only; it is never parsed back.
func (a *NDArray) String() string {
	var sb strings.Builder
	writeNested(&sb, a.shape, a.data, 0)
	return sb.String()
}

func writeNested(sb *strings.Builder, shape Shape, data []float64, start int) {
	if len(shape) == 1 {
		sb.WriteByte('[')
		for i := 0; i < shape[0]; i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(sb, "%g", data[start+i])
		}
		sb.WriteByte(']')
		return
	}

	childLen := 1
	for _, dim := range shape[1:] {
		childLen *= dim
	}
	sb.WriteByte('[')
	for i := 0; i < shape[0]; i++ {
		if i > 0 {
			sb.WriteString(",\n ")
		}
		writeNested(sb, shape[1:], data, start+i*childLen)
	}
	sb.WriteByte(']')
}
