package autodiff

// Backward computes gradients of this tensor with respect to every tracked
// tensor in its expression graph.
//
// The root's gradient is seeded with ones (d(root)/d(root) = 1). The graph
// is then walked with an explicit stack — recursion depth would otherwise
// equal the longest dependency chain — producing a topological order, and
// each node's backward closure runs exactly once, in reverse topological
// order. A node reachable through several paths (a diamond) therefore fires
// only after all of its consumers have contributed to its accumulator.
//
// Gradients accumulate across calls; use ZeroGrad between iterations.
func (t Tensor) Backward() {
	root := t.node
	root.grad.Fill(1)

	order := topoOrder(root)
	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		if n.requiresGrad && n.backward != nil {
			n.backward(n.grad)
		}
	}
}

// topoOrder returns the nodes reachable from root in topological order:
// every parent appears before any node that consumes it. Iterative
// post-order DFS; the visited set is keyed by node identity and lives only
// for this traversal.
func topoOrder(root *Node) []*Node {
	type frame struct {
		node     *Node
		expanded bool
	}

	var order []*Node
	visited := make(map[*Node]struct{})
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.expanded {
			order = append(order, f.node)
			continue
		}
		if _, seen := visited[f.node]; seen {
			continue
		}
		visited[f.node] = struct{}{}

		stack = append(stack, frame{node: f.node, expanded: true})
		for _, p := range f.node.parents {
			if _, seen := visited[p]; !seen {
				stack = append(stack, frame{node: p})
			}
		}
	}
	return order
}
