package autodiff

import (
	"fmt"

	"github.com/sagnik1511/rash/internal/tensor"
)

// Tensor is a value-semantics handle sharing ownership of one Node.
// Copying a Tensor copies the handle, not the node: every copy observes the
// same value and gradient.
type Tensor struct {
	node *Node
}

// New wraps an NDArray value in a fresh leaf tensor.
func New(value *tensor.NDArray, requiresGrad bool) Tensor {
	return Tensor{node: newNode(value, requiresGrad)}
}

// FromScalar creates a leaf tensor of shape [1].
func FromScalar(v float64, requiresGrad bool) Tensor {
	return New(tensor.FromScalar(v), requiresGrad)
}

// FromSlice creates a leaf tensor from flat row-major values and a shape.
func FromSlice(data []float64, shape tensor.Shape, requiresGrad bool) (Tensor, error) {
	value, err := tensor.New(data, shape)
	if err != nil {
		return Tensor{}, err
	}
	return New(value, requiresGrad), nil
}

// Rand creates a leaf tensor filled uniformly from [0, 1).
func Rand(shape tensor.Shape, requiresGrad bool) Tensor {
	return New(tensor.Rand(shape), requiresGrad)
}

// Shape returns the shape of the tensor's value.
func (t Tensor) Shape() tensor.Shape {
	return t.node.value.Shape()
}

// Value returns the underlying NDArray.
func (t Tensor) Value() *tensor.NDArray {
	return t.node.value
}

// Data returns the flat row-major buffer of the value.
// WARNING: modifications to the returned slice modify the tensor.
func (t Tensor) Data() []float64 {
	return t.node.value.Data()
}

// Grad returns the gradient accumulator. It has the value's shape and is
// all zero until Backward runs.
func (t Tensor) Grad() *tensor.NDArray {
	return t.node.grad
}

// RequiresGrad reports whether this tensor participates in gradient
// computation.
func (t Tensor) RequiresGrad() bool {
	return t.node.requiresGrad
}

// Item returns the value of a single-element tensor.
func (t Tensor) Item() (float64, error) {
	return t.node.value.Item()
}

// SetValue replaces the tensor's value. The replacement must match the
// existing shape; otherwise *ShapeError is returned.
func (t Tensor) SetValue(value *tensor.NDArray) error {
	if !value.Shape().Equal(t.node.value.Shape()) {
		return &tensor.ShapeError{
			Op:  "set_value",
			Msg: fmt.Sprintf("replacement shape %v does not match %v", value.Shape(), t.node.value.Shape()),
		}
	}
	t.node.value = value
	return nil
}

// SetGrad replaces the gradient accumulator, shape-checked like SetValue.
func (t Tensor) SetGrad(grad *tensor.NDArray) error {
	if !grad.Shape().Equal(t.node.grad.Shape()) {
		return &tensor.ShapeError{
			Op:  "set_grad",
			Msg: fmt.Sprintf("replacement shape %v does not match %v", grad.Shape(), t.node.grad.Shape()),
		}
	}
	t.node.grad = grad
	return nil
}

// ZeroGrad resets the gradient buffer to zero. It does not touch the graph.
func (t Tensor) ZeroGrad() {
	t.node.grad.Fill(0)
}

// Detach returns a new leaf tensor sharing the same value but disconnected
// from the graph: no gradient tracking, no parents.
func (t Tensor) Detach() Tensor {
	return New(t.node.value, false)
}

// String renders the tensor in the style of its value, annotated with the
// gradient when tracked.
func (t Tensor) String() string {
	if t.node.requiresGrad {
		return fmt.Sprintf("Tensor(%v, requires_grad=true, grad=%v)", t.node.value, t.node.grad)
	}
	return fmt.Sprintf("Tensor(%v, requires_grad=false)", t.node.value)
}

// AccumulateGrad adds g (shape-reduced) into the tensor's gradient buffer
// if the tensor tracks gradients. Composed operators built with NewOp call
// this from their backward closures.
func (t Tensor) AccumulateGrad(g *tensor.NDArray) {
	if t.node.requiresGrad {
		t.node.accumulateGrad(g)
	}
}

// NewOp creates a tensor from a precomputed forward value, linking it to
// its parents with a custom backward closure. It is the extension point
// composed operators (activations, layers) are built on: the closure
// receives the node's accumulated gradient and is responsible for calling
// AccumulateGrad on each parent.
//
// The result tracks gradients if any parent does.
func NewOp(value *tensor.NDArray, backward func(grad *tensor.NDArray), parents ...Tensor) Tensor {
	nodes := make([]*Node, len(parents))
	requiresGrad := false
	for i, p := range parents {
		nodes[i] = p.node
		requiresGrad = requiresGrad || p.node.requiresGrad
	}

	n := newNode(value, requiresGrad, nodes...)
	if requiresGrad {
		n.backward = backward
	}
	return Tensor{node: n}
}
