package graph

import "math"

// sinOp records output = sin(a).
//
// Backward pass: d(sin(a))/da = cos(a), so grad_a = upstream * cos(a).
type sinOp struct {
	a *Node
}

// Sin constructs the node sin(a).
func Sin(a *Node) *Node {
	return &Node{
		value: math.Sin(a.value),
		op:    &sinOp{a: a},
	}
}

func (op *sinOp) Inputs() []*Node {
	return []*Node{op.a}
}

func (op *sinOp) Backward(upstream *Node) []*Node {
	return []*Node{Mul(upstream, Cos(op.a))}
}
