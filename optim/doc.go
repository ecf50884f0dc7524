// Copyright 2025 The Rash Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training models.
//
// # Overview
//
// This package contains:
//   - SGD: stochastic gradient descent with optional momentum
//   - Adam: adaptive moment estimation with bias correction
//   - Optimizer: the interface shared by all optimizers
//
// # Basic Usage
//
//	import (
//	    "github.com/sagnik1511/rash/nn"
//	    "github.com/sagnik1511/rash/optim"
//	)
//
//	func main() {
//	    model := nn.NewLinear(784, 10)
//	    optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	        LR:       0.01,
//	        Momentum: 0.9,
//	    })
//
//	    for i := 0; i < iters; i++ {
//	        optimizer.ZeroGrad()
//	        loss := forward(model)
//	        loss.Backward()
//	        optimizer.Step()
//	    }
//	}
package optim
