// Copyright 2025 The Rash Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/sagnik1511/rash/internal/nn"
)

// Module is the interface implemented by all layers.
type Module = nn.Module

// Sequential chains modules, feeding each output into the next.
type Sequential = nn.Sequential

// NewSequential creates a Sequential container over the given modules.
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// Linear is a fully connected layer computing y = x @ Wᵀ + b.
type Linear = nn.Linear

// NewLinear creates a Linear layer mapping in features to out features.
// Weight and bias are initialized uniformly in [0, 1) and tracked for
// gradients.
func NewLinear(in, out int) *Linear {
	return nn.NewLinear(in, out)
}

// ReLU is the rectified linear activation, max(x, 0).
type ReLU = nn.ReLU

// NewReLU creates a ReLU activation module.
func NewReLU() *ReLU {
	return nn.NewReLU()
}
