package graph

// subOp records output = a - b.
//
// Backward pass:
//   - d(a-b)/da = 1, so grad_a = upstream
//   - d(a-b)/db = -1, so grad_b = -upstream
type subOp struct {
	a, b *Node
}

// Sub constructs the node a - b.
func Sub(a, b *Node) *Node {
	return &Node{
		value: a.value - b.value,
		op:    &subOp{a: a, b: b},
	}
}

func (op *subOp) Inputs() []*Node {
	return []*Node{op.a, op.b}
}

func (op *subOp) Backward(upstream *Node) []*Node {
	return []*Node{upstream, Neg(upstream)}
}
