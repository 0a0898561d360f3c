package graph

import "errors"

var (
	// ErrUnsupportedExponent is returned by Pow for integer exponents
	// below 1.
	ErrUnsupportedExponent = errors.New("unsupported exponent")

	// ErrCyclicGraph is returned by Differentiate when a node is found
	// reachable from itself. The chain rule is undefined on cycles, and
	// the public constructors cannot build one; this guards against
	// graphs assembled some other way.
	ErrCyclicGraph = errors.New("cycle in computation graph")
)
