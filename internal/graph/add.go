package graph

// addOp records output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = upstream
//   - d(a+b)/db = 1, so grad_b = upstream
type addOp struct {
	a, b *Node
}

// Add constructs the node a + b.
func Add(a, b *Node) *Node {
	return &Node{
		value: a.value + b.value,
		op:    &addOp{a: a, b: b},
	}
}

func (op *addOp) Inputs() []*Node {
	return []*Node{op.a, op.b}
}

// Backward passes the upstream gradient through to both operands.
func (op *addOp) Backward(upstream *Node) []*Node {
	return []*Node{upstream, upstream}
}
