// Package optim implements gradient-descent optimizers over tracked
// tensors.
//
// Optimizers update parameter values through raw NDArray arithmetic: the
// updates themselves are never recorded into a computation graph.
//
// Training loop pattern:
//
//	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 1e-4})
//	for step := 0; step < iters; step++ {
//	    opt.ZeroGrad()
//	    loss := mse(model.Forward(x), y)
//	    loss.Backward()
//	    opt.Step()
//	}
package optim

import "github.com/sagnik1511/rash/internal/autodiff"

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one gradient update to every parameter, reading each
	// parameter's current accumulated gradient.
	Step()

	// ZeroGrad clears all parameter gradients. Call it before each
	// backward pass to prevent accumulation across iterations.
	ZeroGrad()

	// LR returns the current learning rate.
	LR() float64
}

func zeroGrads(params []autodiff.Tensor) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
