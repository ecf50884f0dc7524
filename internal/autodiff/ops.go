package autodiff

import "github.com/sagnik1511/rash/internal/tensor"

// Each operation follows one pattern: compute the forward value, build a
// node with requiresGrad = OR of the operands' flags, attach the operands
// as parents, and attach a closure that turns the node's accumulated
// gradient into the parents' local contributions. Accumulation always adds;
// shape reduction for broadcast operands happens inside accumulateGrad.

// Add returns t + other.
func (t Tensor) Add(other Tensor) Tensor {
	a, b := t.node, other.node
	out := newNode(a.value.Add(b.value), a.requiresGrad || b.requiresGrad, a, b)
	out.backward = func(g *tensor.NDArray) {
		if a.requiresGrad {
			a.accumulateGrad(g)
		}
		if b.requiresGrad {
			b.accumulateGrad(g)
		}
	}
	return Tensor{node: out}
}

// Sub returns t - other.
func (t Tensor) Sub(other Tensor) Tensor {
	a, b := t.node, other.node
	out := newNode(a.value.Sub(b.value), a.requiresGrad || b.requiresGrad, a, b)
	out.backward = func(g *tensor.NDArray) {
		if a.requiresGrad {
			a.accumulateGrad(g)
		}
		if b.requiresGrad {
			b.accumulateGrad(g.Neg())
		}
	}
	return Tensor{node: out}
}

// Neg returns -t.
func (t Tensor) Neg() Tensor {
	a := t.node
	out := newNode(a.value.Neg(), a.requiresGrad, a)
	out.backward = func(g *tensor.NDArray) {
		if a.requiresGrad {
			a.accumulateGrad(g.Neg())
		}
	}
	return Tensor{node: out}
}

// Mul returns the elementwise product t * other.
func (t Tensor) Mul(other Tensor) Tensor {
	a, b := t.node, other.node
	out := newNode(a.value.Mul(b.value), a.requiresGrad || b.requiresGrad, a, b)
	out.backward = func(g *tensor.NDArray) {
		if a.requiresGrad {
			a.accumulateGrad(g.Mul(b.value))
		}
		if b.requiresGrad {
			b.accumulateGrad(g.Mul(a.value))
		}
	}
	return Tensor{node: out}
}

// Div returns t / other.
func (t Tensor) Div(other Tensor) Tensor {
	a, b := t.node, other.node
	out := newNode(a.value.Div(b.value), a.requiresGrad || b.requiresGrad, a, b)
	out.backward = func(g *tensor.NDArray) {
		if a.requiresGrad {
			a.accumulateGrad(g.Div(b.value))
		}
		if b.requiresGrad {
			// d(a/b)/db = -a / b²
			b.accumulateGrad(g.Mul(a.value).Div(b.value.Mul(b.value)).Neg())
		}
	}
	return Tensor{node: out}
}

// Exp returns e^t elementwise. The forward value is cached and reused by
// the backward closure, since d(e^x)/dx = e^x.
func (t Tensor) Exp() Tensor {
	a := t.node
	expVal := a.value.Exp()
	out := newNode(expVal, a.requiresGrad, a)
	out.backward = func(g *tensor.NDArray) {
		if a.requiresGrad {
			a.accumulateGrad(g.Mul(expVal))
		}
	}
	return Tensor{node: out}
}

// Pow returns t^n elementwise for an integer exponent.
func (t Tensor) Pow(n int) Tensor {
	a := t.node
	out := newNode(a.value.Pow(n), a.requiresGrad, a)
	out.backward = func(g *tensor.NDArray) {
		if a.requiresGrad && n != 0 {
			// d(x^n)/dx = n * x^(n-1)
			a.accumulateGrad(g.Mul(a.value.Pow(n - 1)).MulScalar(float64(n)))
		}
	}
	return Tensor{node: out}
}

// MatMul returns the matrix product of a and b (see tensor.MatMul for the
// rank dispatch). The backward closure works on the rank-normalized
// operands, so vector and batched forms share one derivation:
//
//	grad_a = g @ bᵀ
//	grad_b = aᵀ @ g
//
// with the transpose swapping the trailing two axes. Axes borrowed for a
// rank-1 operand are squeezed out of its gradient again, and accumulateGrad
// sums any broadcast batch axes back down.
func MatMul(a, b Tensor) Tensor {
	an, bn := a.node, b.node
	out := newNode(tensor.MatMul(an.value, bn.value), an.requiresGrad || bn.requiresGrad, an, bn)
	out.backward = func(g *tensor.NDArray) {
		a2, b2 := an.value, bn.value
		if a2.Rank() == 1 {
			a2 = a2.Unsqueeze(0)
		}
		if b2.Rank() == 1 {
			b2 = b2.Unsqueeze(1)
		}
		fullShape, err := tensor.MatMulShape(a2.Shape(), b2.Shape())
		if err != nil {
			panic(err)
		}
		g2 := g.Reshape(fullShape)

		if an.requiresGrad {
			ga := tensor.MatMul(g2, b2.Transpose())
			if an.value.Rank() == 1 {
				ga = ga.Squeeze(ga.Rank() - 2)
			}
			an.accumulateGrad(ga)
		}
		if bn.requiresGrad {
			gb := tensor.MatMul(a2.Transpose(), g2)
			if bn.value.Rank() == 1 {
				gb = gb.Squeeze(gb.Rank() - 1)
			}
			bn.accumulateGrad(gb)
		}
	}
	return Tensor{node: out}
}

// MatMul returns t @ other.
func (t Tensor) MatMul(other Tensor) Tensor {
	return MatMul(t, other)
}

// Transpose swaps two axes (defaults: the last two). The gradient flows
// back through the same swap, which is its own inverse.
func (t Tensor) Transpose(axes ...int) Tensor {
	a := t.node
	out := newNode(a.value.Transpose(axes...), a.requiresGrad, a)
	out.backward = func(g *tensor.NDArray) {
		if a.requiresGrad {
			a.accumulateGrad(g.Transpose(axes...))
		}
	}
	return Tensor{node: out}
}

// Permute reorders all axes. The gradient flows back through the inverse
// permutation.
func (t Tensor) Permute(order []int) Tensor {
	a := t.node
	out := newNode(a.value.Permute(order), a.requiresGrad, a)

	inverse := make([]int, len(order))
	for i, o := range order {
		inverse[o] = i
	}
	out.backward = func(g *tensor.NDArray) {
		if a.requiresGrad {
			a.accumulateGrad(g.Permute(inverse))
		}
	}
	return Tensor{node: out}
}

// T reverses all axes. Reversal is its own inverse.
func (t Tensor) T() Tensor {
	a := t.node
	out := newNode(a.value.T(), a.requiresGrad, a)
	out.backward = func(g *tensor.NDArray) {
		if a.requiresGrad {
			a.accumulateGrad(g.T())
		}
	}
	return Tensor{node: out}
}

// Comparisons produce 0/1-valued tensors that never track gradients: they
// exist to build masks, and a step function has no useful derivative.

// Greater returns 1 where t > other, else 0.
func (t Tensor) Greater(other Tensor) Tensor {
	return New(t.node.value.Greater(other.node.value), false)
}

// GreaterEqual returns 1 where t >= other, else 0.
func (t Tensor) GreaterEqual(other Tensor) Tensor {
	return New(t.node.value.GreaterEqual(other.node.value), false)
}

// Less returns 1 where t < other, else 0.
func (t Tensor) Less(other Tensor) Tensor {
	return New(t.node.value.Less(other.node.value), false)
}

// LessEqual returns 1 where t <= other, else 0.
func (t Tensor) LessEqual(other Tensor) Tensor {
	return New(t.node.value.LessEqual(other.node.value), false)
}
