package graph

import "fmt"

// Gradients maps every node reachable from a differentiated output to its
// accumulated gradient node. Keys are node identities, never values: two
// structurally distinct nodes that happen to carry equal numbers are
// separate entries.
//
// The map is private to one traversal. Sharing the underlying Node graph
// between concurrent Differentiate calls is safe; sharing a Gradients map
// is not.
type Gradients map[*Node]*Node

// ValueOf returns the numeric partial derivative of the differentiated
// output with respect to n, and whether n was reachable from that output.
func (g Gradients) ValueOf(n *Node) (float64, bool) {
	gn, ok := g[n]
	if !ok {
		return 0, false
	}
	return gn.value, true
}

// Wrt returns the accumulated gradient node for n, or nil if n was not
// reachable from the differentiated output.
func (g Gradients) Wrt(n *Node) *Node {
	return g[n]
}

// Differentiate computes the gradient of output with respect to every
// node reachable from it along parent edges.
//
// Algorithm:
//  1. Build a topological order over the reachable subgraph with an
//     explicit stack (no recursion, so graph depth is not bounded by the
//     call stack). A node found reachable from itself aborts with
//     ErrCyclicGraph.
//  2. Seed the gradient of output with respect to itself as the identity
//     node (value 1).
//  3. Sweep the order in reverse. Each node's Backward runs exactly once,
//     after every downstream contribution into it has been accumulated;
//     contributions arriving at a shared parent over multiple paths are
//     summed, never overwritten.
//
// The sweep iterates a slice in a deterministic order, so identical
// graphs produce bit-identical gradients, and total work is linear in the
// number of edges of the reachable subgraph.
func Differentiate(output *Node) (Gradients, error) {
	order, err := topoSort(output)
	if err != nil {
		return nil, err
	}

	grads := make(Gradients, len(order))
	grads[output] = Leaf(1)

	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		if n.op == nil {
			continue
		}
		upstream, ok := grads[n]
		if !ok {
			continue
		}
		contribs := n.op.Backward(upstream)
		for j, parent := range n.op.Inputs() {
			if existing, ok := grads[parent]; ok {
				grads[parent] = Add(existing, contribs[j])
			} else {
				grads[parent] = contribs[j]
			}
		}
	}

	return grads, nil
}

// Colors for the iterative depth-first search: unvisited, on the current
// search path, finished.
const (
	white = iota
	gray
	black
)

// topoSort returns the nodes reachable from root in topological order
// (every parent before every node built from it).
func topoSort(root *Node) ([]*Node, error) {
	type frame struct {
		n    *Node
		next int // index of the next parent to descend into
	}

	state := map[*Node]int{root: gray}
	order := make([]*Node, 0, 64)
	stack := []frame{{n: root}}

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		parents := f.n.Parents()
		if f.next < len(parents) {
			p := parents[f.next]
			f.next++
			switch state[p] {
			case gray:
				return nil, fmt.Errorf("Differentiate: %w", ErrCyclicGraph)
			case white:
				state[p] = gray
				stack = append(stack, frame{n: p})
			}
			continue
		}
		state[f.n] = black
		order = append(order, f.n)
		stack = stack[:len(stack)-1]
	}

	return order, nil
}
