package graph

import "math"

// cosOp records output = cos(a).
//
// Backward pass: d(cos(a))/da = -sin(a), so grad_a = upstream * -sin(a).
type cosOp struct {
	a *Node
}

// Cos constructs the node cos(a).
func Cos(a *Node) *Node {
	return &Node{
		value: math.Cos(a.value),
		op:    &cosOp{a: a},
	}
}

func (op *cosOp) Inputs() []*Node {
	return []*Node{op.a}
}

func (op *cosOp) Backward(upstream *Node) []*Node {
	return []*Node{Neg(Mul(upstream, Sin(op.a)))}
}
