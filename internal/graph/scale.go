package graph

// scaleOp records output = c * a for a bare scalar c. The scalar is
// captured in the operation and never becomes a parent.
//
// Backward pass: d(c*a)/da = c, so grad_a = upstream * c.
type scaleOp struct {
	c float64
	a *Node
}

// Scale constructs the node c * a.
func Scale(c float64, a *Node) *Node {
	return &Node{
		value: c * a.value,
		op:    &scaleOp{c: c, a: a},
	}
}

// Neg constructs the node -a.
func Neg(a *Node) *Node {
	return Scale(-1, a)
}

func (op *scaleOp) Inputs() []*Node {
	return []*Node{op.a}
}

func (op *scaleOp) Backward(upstream *Node) []*Node {
	return []*Node{Scale(op.c, upstream)}
}
