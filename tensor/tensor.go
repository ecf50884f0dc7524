// Copyright 2025 The Rash Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/sagnik1511/rash/internal/tensor"
)

// Type aliases for public API

// Shape describes the extent of each dimension of an NDArray.
type Shape = tensor.Shape

// NDArray is a dense n-dimensional float64 array.
type NDArray = tensor.NDArray

// Typed panic values raised by NDArray operations.

// ShapeError reports incompatible or invalid shapes.
type ShapeError = tensor.ShapeError

// BroadcastError reports two shapes that cannot be broadcast together.
type BroadcastError = tensor.BroadcastError

// RankError reports an array whose rank is below an operation's minimum.
type RankError = tensor.RankError

// ScalarError reports an Item call on a non-single-element array.
type ScalarError = tensor.ScalarError

// New creates an NDArray from data and shape. The data length must match
// the shape's element count.
//
// Example:
//
//	a, err := tensor.New([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func New(data []float64, shape Shape) (*NDArray, error) {
	return tensor.New(data, shape)
}

// FromScalar creates a single-element NDArray with shape (1).
func FromScalar(v float64) *NDArray {
	return tensor.FromScalar(v)
}

// Zeros creates an NDArray of the given shape filled with zeros.
func Zeros(shape Shape) *NDArray {
	return tensor.Zeros(shape)
}

// Ones creates an NDArray of the given shape filled with ones.
func Ones(shape Shape) *NDArray {
	return tensor.Ones(shape)
}

// Full creates an NDArray of the given shape filled with value.
func Full(shape Shape, value float64) *NDArray {
	return tensor.Full(shape, value)
}

// Rand creates an NDArray of the given shape with values drawn uniformly
// from [0, 1).
func Rand(shape Shape) *NDArray {
	return tensor.Rand(shape)
}

// MatMul multiplies two arrays with batched matrix semantics. Rank-1
// operands are promoted to matrices for the product and the borrowed
// axis is dropped from the result. Leading batch dimensions broadcast.
func MatMul(a, b *NDArray) *NDArray {
	return tensor.MatMul(a, b)
}

// MatMulShape computes the result shape of MatMul(a, b) without
// performing the multiplication.
func MatMulShape(a, b Shape) (Shape, error) {
	return tensor.MatMulShape(a, b)
}

// BroadcastShapes computes the broadcast result shape of a and b, or an
// error if the shapes are incompatible.
func BroadcastShapes(a, b Shape) (Shape, error) {
	return tensor.BroadcastShapes(a, b)
}
