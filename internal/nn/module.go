// Package nn provides composed operators built on the autodiff core.
//
// Layers interact with the engine only through its public contract:
// forward values computed with tensor operations, and backward closures
// registered via autodiff.NewOp expressed purely in terms of cached
// intermediates and the incoming gradient.
package nn

import "github.com/sagnik1511/rash/internal/autodiff"

// Module is anything with a forward pass and trainable parameters.
type Module interface {
	Forward(x autodiff.Tensor) autodiff.Tensor

	// Parameters returns the module's trainable tensors. Modules without
	// parameters return nil.
	Parameters() []autodiff.Tensor
}

// Sequential chains modules, feeding each module's output into the next.
type Sequential struct {
	modules []Module
}

// NewSequential creates a sequential container from the given modules.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{modules: modules}
}

// Forward runs the modules in order.
func (s *Sequential) Forward(x autodiff.Tensor) autodiff.Tensor {
	for _, m := range s.modules {
		x = m.Forward(x)
	}
	return x
}

// Parameters returns the concatenated parameters of all modules.
func (s *Sequential) Parameters() []autodiff.Tensor {
	var params []autodiff.Tensor
	for _, m := range s.modules {
		params = append(params, m.Parameters()...)
	}
	return params
}
