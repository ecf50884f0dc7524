// Copyright 2025 The Rash Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network layers built on the autodiff engine.
//
// # Overview
//
// This package contains:
//   - Module: the interface every layer implements
//   - Linear: fully connected layer (y = x @ Wᵀ + b)
//   - ReLU: rectified linear activation
//   - Sequential: container chaining modules in order
//
// Layers are composed operators: their forward pass computes values with
// tensor operations and registers a backward closure via autodiff.NewOp,
// so they extend the engine without touching its internals.
//
// # Basic Usage
//
//	import (
//	    "github.com/sagnik1511/rash/autodiff"
//	    "github.com/sagnik1511/rash/nn"
//	)
//
//	func main() {
//	    model := nn.NewSequential(
//	        nn.NewLinear(1, 16),
//	        nn.NewReLU(),
//	        nn.NewLinear(16, 1),
//	    )
//
//	    x := autodiff.Rand(tensor.Shape{32, 1}, false)
//	    y := model.Forward(x)
//	    y.Backward()
//	}
package nn
