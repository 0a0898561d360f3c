// Copyright 2025 The Gradix Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over a
// dynamic computation graph.
//
// Operators applied to Node operands eagerly compute forward values while
// recording operand references and local derivative rules. Differentiate
// then sweeps backward from an output node in one pass, summing the
// contributions that reach each ancestor over every downstream path.
//
// Example:
//
//	x := autodiff.Leaf(2)
//	x2, _ := autodiff.Pow(x, 2)
//	h := autodiff.Add(x2, autodiff.Scale(2, x)) // h = x² + 2x
//	grads, _ := autodiff.Differentiate(h)
//	dhdx, _ := grads.ValueOf(x)                 // 6
package autodiff

import (
	"github.com/gradix-ml/gradix/internal/graph"
)

// Node is a vertex of the computation graph. Nodes are immutable after
// construction and safe to share across concurrent traversals.
type Node = graph.Node

// Operation is the recorded local-rule interface carried by non-leaf
// nodes.
type Operation = graph.Operation

// Gradients maps node identity to accumulated gradient node for one
// traversal. Each Differentiate call returns a fresh, private map.
type Gradients = graph.Gradients

// Error kinds returned by graph construction and traversal.
var (
	ErrUnsupportedExponent = graph.ErrUnsupportedExponent
	ErrCyclicGraph         = graph.ErrCyclicGraph
)

// Leaf constructs an input node with no parents.
func Leaf(value float64) *Node {
	return graph.Leaf(value)
}

// Add constructs the node a + b.
func Add(a, b *Node) *Node {
	return graph.Add(a, b)
}

// Sub constructs the node a - b.
func Sub(a, b *Node) *Node {
	return graph.Sub(a, b)
}

// Mul constructs the node a * b. Using the same node for both operands is
// valid; its two gradient contributions are summed.
func Mul(a, b *Node) *Node {
	return graph.Mul(a, b)
}

// Scale constructs the node c * a for a bare scalar c.
func Scale(c float64, a *Node) *Node {
	return graph.Scale(c, a)
}

// Neg constructs the node -a.
func Neg(a *Node) *Node {
	return graph.Neg(a)
}

// Pow constructs the node a**p for integer p >= 1.
func Pow(a *Node, p int) (*Node, error) {
	return graph.Pow(a, p)
}

// Sin constructs the node sin(a).
func Sin(a *Node) *Node {
	return graph.Sin(a)
}

// Cos constructs the node cos(a).
func Cos(a *Node) *Node {
	return graph.Cos(a)
}

// Differentiate computes accumulated gradients of output with respect to
// every reachable ancestor in a single reverse pass.
func Differentiate(output *Node) (Gradients, error) {
	return graph.Differentiate(output)
}
