// Copyright 2025 The Rash Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// Every operation on a Tensor computes its value eagerly and records the
// operands and an analytic derivative closure on a graph node. Calling
// Backward on a result seeds its gradient with ones and replays the graph
// in reverse dependency order, accumulating gradients into every tracked
// input.
//
// Example:
//
//	import (
//	    "github.com/sagnik1511/rash/autodiff"
//	    "github.com/sagnik1511/rash/tensor"
//	)
//
//	func main() {
//	    a := autodiff.FromScalar(2, true)
//	    b := autodiff.FromScalar(4, true)
//
//	    c := a.Add(b).Exp() // e^(a+b)
//	    c.Backward()
//
//	    _ = a.Grad() // d c / d a, also e^(a+b)
//	}
package autodiff

import (
	"github.com/sagnik1511/rash/internal/autodiff"
	"github.com/sagnik1511/rash/internal/tensor"
)

// Tensor is a handle to a node in the computation graph. Handles are
// copied by value; copies share the same node.
type Tensor = autodiff.Tensor

// New wraps an NDArray in a graph leaf. When requiresGrad is true the
// leaf accumulates gradients during Backward.
func New(value *tensor.NDArray, requiresGrad bool) Tensor {
	return autodiff.New(value, requiresGrad)
}

// FromScalar creates a single-element leaf with shape (1).
func FromScalar(v float64, requiresGrad bool) Tensor {
	return autodiff.FromScalar(v, requiresGrad)
}

// FromSlice creates a leaf from data and shape.
func FromSlice(data []float64, shape tensor.Shape, requiresGrad bool) (Tensor, error) {
	return autodiff.FromSlice(data, shape, requiresGrad)
}

// Rand creates a leaf with values drawn uniformly from [0, 1).
func Rand(shape tensor.Shape, requiresGrad bool) Tensor {
	return autodiff.Rand(shape, requiresGrad)
}

// MatMul multiplies two tensors with batched matrix semantics and records
// the product on the graph.
func MatMul(a, b Tensor) Tensor {
	return autodiff.MatMul(a, b)
}

// NewOp builds a graph node from a precomputed value, a backward closure,
// and the parent tensors it derives from. It is the extension point for
// composed operators defined outside this package; the nn package builds
// its layers with it.
//
// The backward closure receives the gradient flowing into the node and
// must push contributions to the parents via Tensor.AccumulateGrad. It is
// only recorded when at least one parent is tracked.
func NewOp(value *tensor.NDArray, backward func(grad *tensor.NDArray), parents ...Tensor) Tensor {
	return autodiff.NewOp(value, backward, parents...)
}
