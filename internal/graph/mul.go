package graph

// mulOp records output = a * b.
//
// Backward pass (product rule):
//   - d(a*b)/da = b, so grad_a = upstream * b
//   - d(a*b)/db = a, so grad_b = upstream * a
type mulOp struct {
	a, b *Node
}

// Mul constructs the node a * b. Passing the same node as both operands
// is valid; the traversal sums the two resulting contributions.
func Mul(a, b *Node) *Node {
	return &Node{
		value: a.value * b.value,
		op:    &mulOp{a: a, b: b},
	}
}

func (op *mulOp) Inputs() []*Node {
	return []*Node{op.a, op.b}
}

func (op *mulOp) Backward(upstream *Node) []*Node {
	return []*Node{
		Mul(upstream, op.b),
		Mul(upstream, op.a),
	}
}
