// Package autodiff implements reverse-mode automatic differentiation over
// NDArray values.
//
// Every arithmetic call on Tensor handles computes its result eagerly,
// allocates a Node recording the operand nodes as parents together with a
// closure holding the operation's analytic derivative, and returns a new
// handle. Tensor.Backward seeds the root gradient with ones and replays the
// recorded graph in reverse dependency order, running each node's closure
// exactly once.
//
// Example:
//
//	a := autodiff.FromScalar(5, true)
//	b := autodiff.FromScalar(1, true)
//	c := a.Add(b).Exp()
//	c.Backward()
//	fmt.Println(a.Grad()) // [403.4288...]
package autodiff

import "github.com/sagnik1511/rash/internal/tensor"

// Node is one vertex of the computation graph. It pairs a computed value
// with its gradient accumulator and, for non-leaf nodes, the backward
// closure that pushes gradient into the parent nodes.
//
// grad always has the same shape as value: it is zero-initialized at
// construction and every accumulation is shape-reduced first.
//
// Parents are plain pointers. The graph only ever points from a result
// toward its inputs, so there are no cycles, and the garbage collector
// keeps a parent alive exactly as long as any descendant can still demand
// gradient from it.
type Node struct {
	value        *tensor.NDArray
	grad         *tensor.NDArray
	requiresGrad bool
	backward     func(grad *tensor.NDArray)
	parents      []*Node
}

func newNode(value *tensor.NDArray, requiresGrad bool, parents ...*Node) *Node {
	return &Node{
		value:        value,
		grad:         tensor.Zeros(value.Shape()),
		requiresGrad: requiresGrad,
		parents:      parents,
	}
}

// accumulateGrad adds g into the node's gradient buffer, never overwriting:
// a value used in two places receives the sum of both paths' contributions.
// g is first reduced to the value's shape in case broadcasting stretched
// this operand during the forward pass.
func (n *Node) accumulateGrad(g *tensor.NDArray) {
	n.grad = n.grad.Add(reduceToShape(g, n.value.Shape()))
}

// reduceToShape sums a gradient back down to the shape of the operand it
// belongs to ("un-broadcast"): axes the operand never had are summed away
// entirely, axes of size 1 that were stretched are summed with the
// dimension kept.
func reduceToShape(g *tensor.NDArray, target tensor.Shape) *tensor.NDArray {
	if g.Shape().Equal(target) {
		return g
	}

	for g.Rank() > len(target) {
		g = g.Sum([]int{0}, false)
	}

	shape := g.Shape()
	for i := range target {
		if target[i] == 1 && shape[i] > 1 {
			g = g.Sum([]int{i}, true)
			shape = g.Shape()
		}
	}

	if !g.Shape().Equal(target) {
		g = g.Reshape(target)
	}
	return g
}
