// Copyright 2025 The Rash Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"math"
	"testing"

	"github.com/sagnik1511/rash/autodiff"
	"github.com/sagnik1511/rash/nn"
	"github.com/sagnik1511/rash/optim"
	"github.com/sagnik1511/rash/tensor"
)

// TestModuleInterface verifies that concrete types implement Module.
func TestModuleInterface(t *testing.T) {
	tests := []struct {
		name   string
		module nn.Module
	}{
		{
			name:   "Linear",
			module: nn.NewLinear(10, 5),
		},
		{
			name:   "ReLU",
			module: nn.NewReLU(),
		},
		{
			name: "Sequential",
			module: nn.NewSequential(
				nn.NewLinear(10, 5),
				nn.NewReLU(),
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := autodiff.Rand(tensor.Shape{2, 10}, false)
			out := tt.module.Forward(input)
			if out.Shape()[0] != 2 {
				t.Errorf("Forward lost the batch dimension: %v", out.Shape())
			}
			// Parameters may be nil (ReLU) but must not panic.
			_ = tt.module.Parameters()
		})
	}
}

// TestTrainingReducesLoss runs a few SGD steps on a tiny regression
// problem through the public API and checks the loss goes down.
func TestTrainingReducesLoss(t *testing.T) {
	// y = 2x over a handful of points.
	xs := []float64{-1, -0.5, 0, 0.5, 1}
	ys := make([]float64, len(xs))
	for i, v := range xs {
		ys[i] = 2 * v
	}

	x, err := autodiff.FromSlice(xs, tensor.Shape{len(xs), 1}, false)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	y, err := autodiff.FromSlice(ys, tensor.Shape{len(ys), 1}, false)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}

	model := nn.NewSequential(
		nn.NewLinear(1, 8),
		nn.NewReLU(),
		nn.NewLinear(8, 1),
	)
	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.01})

	mse := func() float64 {
		pred := model.Forward(x)
		diff := pred.Sub(y)
		v, err := diff.Mul(diff).Value().Mean(nil, false).Item()
		if err != nil {
			t.Fatalf("Mean/Item: %v", err)
		}
		return v
	}

	before := mse()
	for i := 0; i < 100; i++ {
		opt.ZeroGrad()
		pred := model.Forward(x)
		diff := pred.Sub(y)
		diff.Mul(diff).Backward()
		opt.Step()
	}
	after := mse()

	if math.IsNaN(after) || after >= before {
		t.Errorf("loss did not decrease: before %v, after %v", before, after)
	}
}
