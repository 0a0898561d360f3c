// Package stencil is the driver-side consumer of the AD engine: it
// evaluates a three-point Laplacian stencil over an array and
// differentiates each output element with respect to its inputs.
//
// Every index is an independent straight-line expression over a disjoint
// read window with a disjoint output slot, so the per-index work runs
// under parallel.ForRange with no synchronization of its own. The array
// allocation and iteration live here; the AD packages only see one small
// expression at a time.
package stencil

import (
	"fmt"

	"github.com/gradix-ml/gradix/internal/dual"
	"github.com/gradix-ml/gradix/internal/graph"
	"github.com/gradix-ml/gradix/internal/parallel"
)

// Laplacian evaluates out[i] = alpha * (u[i-1] - 2*u[i] + u[i+1]) for
// every interior index via forward-mode duals, seeding u[i] at each
// index. It returns the output values and the per-index derivative
// d(out[i])/d(u[i]). Boundary slots are left at zero.
func Laplacian(u []float64, alpha float64, cfg parallel.Config) (values, derivs []float64, err error) {
	if len(u) < 3 {
		return nil, nil, fmt.Errorf("stencil: need at least 3 points, got %d", len(u))
	}

	values = make([]float64, len(u))
	derivs = make([]float64, len(u))

	parallel.ForRange(1, len(u)-1, func(i int) {
		left := dual.Const(u[i-1])
		center := dual.Seed(u[i])
		right := dual.Const(u[i+1])

		r := dual.Const(alpha).Mul(left.Add(right).Sub(dual.Const(2).Mul(center)))
		values[i] = r.Value
		derivs[i] = r.Deriv
	}, cfg)

	return values, derivs, nil
}

// LaplacianWindow evaluates the same stencil via vector duals, seeding
// all three window inputs at once. grads[i] holds the full window
// gradient (d/du[i-1], d/du[i], d/du[i+1]) of out[i], one Jacobian row
// per index in a single evaluation pass.
func LaplacianWindow(u []float64, alpha float64, cfg parallel.Config) (values []float64, grads [][3]float64, err error) {
	if len(u) < 3 {
		return nil, nil, fmt.Errorf("stencil: need at least 3 points, got %d", len(u))
	}

	values = make([]float64, len(u))
	grads = make([][3]float64, len(u))
	errs := make([]error, len(u))

	parallel.ForRange(1, len(u)-1, func(i int) {
		values[i], grads[i], errs[i] = windowRow(u[i-1], u[i], u[i+1], alpha)
	}, cfg)

	for _, e := range errs {
		if e != nil {
			return nil, nil, e
		}
	}
	return values, grads, nil
}

// windowRow differentiates one stencil application with respect to its
// three-point window.
func windowRow(l, c, r, alpha float64) (float64, [3]float64, error) {
	left, err := dual.SeedVector(l, 0, 3)
	if err != nil {
		return 0, [3]float64{}, err
	}
	center, err := dual.SeedVector(c, 1, 3)
	if err != nil {
		return 0, [3]float64{}, err
	}
	right, err := dual.SeedVector(r, 2, 3)
	if err != nil {
		return 0, [3]float64{}, err
	}

	sum, err := left.Add(right)
	if err != nil {
		return 0, [3]float64{}, err
	}
	scaled, err := sum.Sub(center.Scale(2))
	if err != nil {
		return 0, [3]float64{}, err
	}
	out := scaled.Scale(alpha)
	return out.Value, [3]float64{out.Grad[0], out.Grad[1], out.Grad[2]}, nil
}

// LaplacianGraph evaluates the stencil through reverse mode: one private
// graph and one private gradient map per index. Returns the same values
// and d(out[i])/d(u[i]) as Laplacian; tests use the pair as a
// forward-vs-reverse cross-check.
func LaplacianGraph(u []float64, alpha float64, cfg parallel.Config) (values, derivs []float64, err error) {
	if len(u) < 3 {
		return nil, nil, fmt.Errorf("stencil: need at least 3 points, got %d", len(u))
	}

	values = make([]float64, len(u))
	derivs = make([]float64, len(u))
	errs := make([]error, len(u))

	parallel.ForRange(1, len(u)-1, func(i int) {
		left := graph.Leaf(u[i-1])
		center := graph.Leaf(u[i])
		right := graph.Leaf(u[i+1])

		out := graph.Scale(alpha, graph.Sub(graph.Add(left, right), graph.Scale(2, center)))
		grads, derr := graph.Differentiate(out)
		if derr != nil {
			errs[i] = derr
			return
		}
		values[i] = out.Value()
		derivs[i], _ = grads.ValueOf(center)
	}, cfg)

	for _, e := range errs {
		if e != nil {
			return nil, nil, e
		}
	}
	return values, derivs, nil
}
