package graph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/gradix-ml/gradix/internal/graph"
)

// gradOf differentiates output and returns the accumulated partial with
// respect to wrt, failing the test if wrt is unreachable.
func gradOf(t *testing.T, output, wrt *graph.Node) float64 {
	t.Helper()

	grads, err := graph.Differentiate(output)
	if err != nil {
		t.Fatalf("Differentiate() error: %v", err)
	}
	v, ok := grads.ValueOf(wrt)
	if !ok {
		t.Fatalf("no gradient entry for node with value %g", wrt.Value())
	}
	return v
}

func TestAdd(t *testing.T) {
	a, b := graph.Leaf(2), graph.Leaf(5)
	sum := graph.Add(a, b)

	if sum.Value() != 7 {
		t.Errorf("Add value = %g, want 7", sum.Value())
	}
	if g := gradOf(t, sum, a); g != 1 {
		t.Errorf("d(a+b)/da = %g, want 1", g)
	}
	if g := gradOf(t, sum, b); g != 1 {
		t.Errorf("d(a+b)/db = %g, want 1", g)
	}
}

func TestSub(t *testing.T) {
	a, b := graph.Leaf(2), graph.Leaf(5)
	diff := graph.Sub(a, b)

	if diff.Value() != -3 {
		t.Errorf("Sub value = %g, want -3", diff.Value())
	}
	if g := gradOf(t, diff, a); g != 1 {
		t.Errorf("d(a-b)/da = %g, want 1", g)
	}
	if g := gradOf(t, diff, b); g != -1 {
		t.Errorf("d(a-b)/db = %g, want -1", g)
	}
}

func TestMul(t *testing.T) {
	a, b := graph.Leaf(2), graph.Leaf(5)
	prod := graph.Mul(a, b)

	if prod.Value() != 10 {
		t.Errorf("Mul value = %g, want 10", prod.Value())
	}
	if g := gradOf(t, prod, a); g != 5 {
		t.Errorf("d(a*b)/da = %g, want b = 5", g)
	}
	if g := gradOf(t, prod, b); g != 2 {
		t.Errorf("d(a*b)/db = %g, want a = 2", g)
	}
}

func TestScale(t *testing.T) {
	a := graph.Leaf(3)
	scaled := graph.Scale(4, a)

	if scaled.Value() != 12 {
		t.Errorf("Scale value = %g, want 12", scaled.Value())
	}
	if g := gradOf(t, scaled, a); g != 4 {
		t.Errorf("d(c*a)/da = %g, want c = 4", g)
	}
	// The scalar factor is not a parent.
	if len(scaled.Parents()) != 1 {
		t.Errorf("Scale node has %d parents, want 1", len(scaled.Parents()))
	}
}

func TestNeg(t *testing.T) {
	a := graph.Leaf(3)
	neg := graph.Neg(a)

	if neg.Value() != -3 {
		t.Errorf("Neg value = %g, want -3", neg.Value())
	}
	if g := gradOf(t, neg, a); g != -1 {
		t.Errorf("d(-a)/da = %g, want -1", g)
	}
}

func TestPow(t *testing.T) {
	a := graph.Leaf(3)
	cubed, err := graph.Pow(a, 3)
	if err != nil {
		t.Fatalf("Pow(a, 3) error: %v", err)
	}

	if cubed.Value() != 27 {
		t.Errorf("Pow value = %g, want 27", cubed.Value())
	}
	if g := gradOf(t, cubed, a); g != 27 {
		t.Errorf("d(a³)/da = %g, want 3a² = 27", g)
	}

	ident, err := graph.Pow(a, 1)
	if err != nil {
		t.Fatalf("Pow(a, 1) error: %v", err)
	}
	if g := gradOf(t, ident, a); g != 1 {
		t.Errorf("d(a¹)/da = %g, want 1", g)
	}
}

func TestPow_UnsupportedExponent(t *testing.T) {
	a := graph.Leaf(3)
	for _, p := range []int{0, -1, -5} {
		if _, err := graph.Pow(a, p); !errors.Is(err, graph.ErrUnsupportedExponent) {
			t.Errorf("Pow(a, %d) error = %v, want ErrUnsupportedExponent", p, err)
		}
	}
}

func TestSin(t *testing.T) {
	a := graph.Leaf(0.7)
	s := graph.Sin(a)

	if s.Value() != math.Sin(0.7) {
		t.Errorf("Sin value = %g, want %g", s.Value(), math.Sin(0.7))
	}
	if g := gradOf(t, s, a); g != math.Cos(0.7) {
		t.Errorf("d(sin a)/da = %g, want cos(a) = %g", g, math.Cos(0.7))
	}
}

func TestCos(t *testing.T) {
	a := graph.Leaf(0.7)
	c := graph.Cos(a)

	if c.Value() != math.Cos(0.7) {
		t.Errorf("Cos value = %g, want %g", c.Value(), math.Cos(0.7))
	}
	if g := gradOf(t, c, a); g != -math.Sin(0.7) {
		t.Errorf("d(cos a)/da = %g, want -sin(a) = %g", g, -math.Sin(0.7))
	}
}

func TestLeaf(t *testing.T) {
	x := graph.Leaf(42)

	if x.Value() != 42 {
		t.Errorf("Leaf value = %g, want 42", x.Value())
	}
	if !x.IsLeaf() {
		t.Error("Leaf node reports IsLeaf() = false")
	}
	if x.Parents() != nil {
		t.Errorf("Leaf has parents: %v", x.Parents())
	}

	sum := graph.Add(x, x)
	if sum.IsLeaf() {
		t.Error("operator node reports IsLeaf() = true")
	}
	if len(sum.Parents()) != 2 {
		t.Errorf("Add node has %d parents, want 2", len(sum.Parents()))
	}
}
