// Package graph implements reverse-mode automatic differentiation over a
// dynamic computation graph.
//
// Each arithmetic operator, applied to Node operands, eagerly computes the
// forward value and records a new Node whose operation remembers its
// operand nodes and knows how to turn an upstream gradient into one
// contribution per operand. Differentiate then sweeps the graph backward
// from an output node, accumulating gradient contributions for every
// reachable ancestor in a single pass.
//
// Example:
//
//	x := graph.Leaf(2)
//	x2, _ := graph.Pow(x, 2)
//	h := graph.Add(x2, graph.Scale(2, x)) // h = x² + 2x
//	grads, _ := graph.Differentiate(h)
//	dhdx, _ := grads.ValueOf(x)           // 2x + 2 = 6
package graph

// Node is one vertex of the computation graph: a forward value plus the
// operation that produced it. Leaf nodes carry no operation and represent
// independent variables or materialized constants.
//
// Nodes are immutable once constructed; parents and rules are fixed at
// creation time. That makes a node safe to share as the parent of many
// children and safe to read concurrently from independent traversals.
type Node struct {
	value float64
	op    Operation // nil for leaves
}

// Leaf constructs an input node: an independent variable or a constant
// with no parents. Gradients of an output with respect to a Leaf are read
// from the Gradients map returned by Differentiate.
func Leaf(value float64) *Node {
	return &Node{value: value}
}

// Value returns the forward value computed for this node.
func (n *Node) Value() float64 {
	return n.value
}

// IsLeaf reports whether the node has no parents.
func (n *Node) IsLeaf() bool {
	return n.op == nil
}

// Parents returns the operand nodes this node was built from, in operand
// order. Leaves return nil.
func (n *Node) Parents() []*Node {
	if n.op == nil {
		return nil
	}
	return n.op.Inputs()
}

// intPow computes v**p for p >= 0 by repeated multiplication.
func intPow(v float64, p int) float64 {
	r := 1.0
	for i := 0; i < p; i++ {
		r *= v
	}
	return r
}
