package nn

import (
	"github.com/sagnik1511/rash/internal/autodiff"
	"github.com/sagnik1511/rash/internal/tensor"
)

// Linear is a fully connected layer: y = x @ Wᵀ + b.
//
// The weight has shape [out, in] and the bias [out]; both are tracked
// leaves initialized uniformly from [0, 1).
type Linear struct {
	weight autodiff.Tensor
	bias   autodiff.Tensor
}

// NewLinear creates a linear layer mapping in features to out features.
func NewLinear(in, out int) *Linear {
	return &Linear{
		weight: autodiff.Rand(tensor.Shape{out, in}, true),
		bias:   autodiff.Rand(tensor.Shape{out}, true),
	}
}

// Forward computes x @ Wᵀ + b. x is [batch, in]; the result is
// [batch, out], with the bias broadcast across the batch.
func (l *Linear) Forward(x autodiff.Tensor) autodiff.Tensor {
	return autodiff.MatMul(x, l.weight.T()).Add(l.bias)
}

// Weight returns the weight tensor handle.
func (l *Linear) Weight() autodiff.Tensor {
	return l.weight
}

// Bias returns the bias tensor handle.
func (l *Linear) Bias() autodiff.Tensor {
	return l.bias
}

// Parameters returns the weight and bias.
func (l *Linear) Parameters() []autodiff.Tensor {
	return []autodiff.Tensor{l.weight, l.bias}
}
