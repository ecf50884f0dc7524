package optim

import (
	"github.com/sagnik1511/rash/internal/autodiff"
	"github.com/sagnik1511/rash/internal/tensor"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Without momentum:
//
//	param = param - lr * grad
//
// With momentum:
//
//	velocity = momentum * velocity + grad
//	param = param - lr * velocity
type SGD struct {
	params     []autodiff.Tensor
	lr         float64
	momentum   float64
	velocities []*tensor.NDArray
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // learning rate (default 0.01)
	Momentum float64 // momentum factor (default 0, range [0, 1))
}

// NewSGD creates an SGD optimizer over the given parameters.
func NewSGD(params []autodiff.Tensor, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make([]*tensor.NDArray, len(params)),
	}
}

// Step applies one update to every parameter, in place.
func (s *SGD) Step() {
	for i, p := range s.params {
		update := p.Grad()
		if s.momentum != 0 {
			if s.velocities[i] == nil {
				s.velocities[i] = tensor.Zeros(p.Shape())
			}
			s.velocities[i] = s.velocities[i].MulScalar(s.momentum).Add(update)
			update = s.velocities[i]
		}

		next := p.Value().Sub(update.MulScalar(s.lr))
		copy(p.Data(), next.Data())
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	zeroGrads(s.params)
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}

// SetLR updates the learning rate; useful for scheduling.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
