// Copyright 2025 The Rash Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides dense n-dimensional float64 arrays with
// NumPy-style broadcasting.
//
// # Overview
//
// NDArray is the numeric substrate of the rash engine. This package
// provides:
//   - Row-major dense storage with explicit Shape
//   - Broadcasting arithmetic (Add, Sub, Mul, Div, scalar variants)
//   - Element-wise math (Exp, Neg, Abs, Sqrt, Pow) and comparisons
//   - Axis reductions (Sum, Mean, Max, Min) with keepDims
//   - Shape manipulation (Reshape, Squeeze, Unsqueeze, Permute, Transpose)
//   - Batched matrix multiplication backed by BLAS
//
// # Basic Usage
//
//	import "github.com/sagnik1511/rash/tensor"
//
//	func main() {
//	    a, _ := tensor.New([]float64{1, 2, 3}, tensor.Shape{3, 1})
//	    b, _ := tensor.New([]float64{10, 20}, tensor.Shape{1, 2})
//
//	    c := a.Add(b)                  // shape (3, 2)
//	    s := c.Sum([]int{0}, false)    // shape (2)
//	}
//
// # Broadcasting
//
// Binary operations follow NumPy broadcasting rules: shapes are aligned
// on trailing dimensions, size-1 dimensions stretch, and missing leading
// dimensions are treated as 1:
//
//	a := tensor.Zeros(tensor.Shape{3, 1})  // (3, 1)
//	b := tensor.Ones(tensor.Shape{1, 4})   // (1, 4)
//	c := a.Add(b)                          // (3, 4)
//
// # Error Handling
//
// Constructors return errors. Operations on already-constructed arrays
// treat invalid inputs as programmer error and panic with typed error
// values (*ShapeError, *BroadcastError, *RankError, *ScalarError) so the
// failing shapes appear in the panic message.
package tensor
