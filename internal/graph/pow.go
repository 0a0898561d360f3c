package graph

import "fmt"

// powOp records output = a**p for an integer exponent p >= 1.
//
// Backward pass (product rule, applied directly rather than via generic
// exponentiation): d(a^p)/da = p * a^(p-1),
// so grad_a = upstream * p * a^(p-1).
type powOp struct {
	a *Node
	p int
}

// Pow constructs the node a**p. Exponents below 1 return
// ErrUnsupportedExponent; express division explicitly instead.
func Pow(a *Node, p int) (*Node, error) {
	if p < 1 {
		return nil, fmt.Errorf("Pow: exponent %d: %w", p, ErrUnsupportedExponent)
	}
	return &Node{
		value: intPow(a.value, p),
		op:    &powOp{a: a, p: p},
	}, nil
}

func (op *powOp) Inputs() []*Node {
	return []*Node{op.a}
}

func (op *powOp) Backward(upstream *Node) []*Node {
	if op.p == 1 {
		return []*Node{upstream}
	}
	// p >= 2, so the a^(p-1) node is well-formed.
	prev := &Node{
		value: intPow(op.a.value, op.p-1),
		op:    &powOp{a: op.a, p: op.p - 1},
	}
	return []*Node{Mul(upstream, Scale(float64(op.p), prev))}
}
