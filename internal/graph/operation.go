package graph

// Operation represents a differentiable operation recorded on a node.
// The forward value is computed at construction time; Backward supplies
// the reverse-mode local rules.
//
// Backward expresses each contribution as a graph node, not a raw number,
// so rules compose correctly when the upstream gradient is itself
// graph-valued (as it always is during a traversal: the seed is the
// identity node and every accumulated gradient is built with Add/Mul).
type Operation interface {
	// Inputs returns the operand nodes, in operand order. Only node
	// operands appear here; a bare scalar operand (Scale's factor,
	// Pow's exponent) is captured in the operation and is not a parent.
	Inputs() []*Node

	// Backward maps the upstream gradient node to one contribution per
	// input, aligned with Inputs().
	//
	// Example for add(a, b): d(a+b)/da = d(a+b)/db = 1, so the upstream
	// gradient flows to both inputs unchanged.
	Backward(upstream *Node) []*Node
}
