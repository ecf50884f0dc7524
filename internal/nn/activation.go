package nn

import (
	"github.com/sagnik1511/rash/internal/autodiff"
	"github.com/sagnik1511/rash/internal/tensor"
)

// ReLU applies the rectifier f(x) = max(0, x).
//
// The forward pass builds a 0/1 mask with a (never-tracked) comparison,
// multiplies it into the input, and caches it; the backward closure
// multiplies the incoming gradient by the same mask before accumulating
// into the input. This is the canonical pattern for building operators on
// top of the core.
type ReLU struct{}

// NewReLU creates a ReLU module.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Forward applies the rectifier.
func (r *ReLU) Forward(x autodiff.Tensor) autodiff.Tensor {
	mask := x.Value().Greater(tensor.FromScalar(0))
	out := mask.Mul(x.Value())

	return autodiff.NewOp(out, func(g *tensor.NDArray) {
		x.AccumulateGrad(g.Mul(mask))
	}, x)
}

// Parameters returns nil: ReLU has no trainable parameters.
func (r *ReLU) Parameters() []autodiff.Tensor {
	return nil
}
