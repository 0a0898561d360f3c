// Copyright 2025 The Gradix Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dual provides forward-mode automatic differentiation.
//
// A dual number pairs a value with its derivative and propagates both
// through arithmetic, so evaluating an expression built from seeded duals
// yields the exact derivative with no graph construction and no finite
// differences.
//
// Example, h(x) = x² + 2x at x = 2:
//
//	x := dual.Seed(2)
//	x2, _ := x.Pow(2)
//	h := x2.Add(dual.Const(2).Mul(x))
//	fmt.Println(h.Value, h.Deriv) // 8 6
//
// Vector duals carry one partial per independent variable and compute a
// full Jacobian row in one pass:
//
//	x, _ := dual.SeedVector(3, 0, 2)
//	y, _ := dual.SeedVector(4, 1, 2)
//	xy, _ := x.Mul(y)
//	// xy.Grad == [4, 3]
package dual

import (
	"github.com/gradix-ml/gradix/internal/dual"
)

// Dual is a value paired with a single directional derivative.
type Dual = dual.Dual

// Vector is a value paired with an N-length gradient, one partial per
// independent variable.
type Vector = dual.Vector

// Error kinds returned by dual arithmetic; match with errors.Is.
var (
	ErrDivisionByZero      = dual.ErrDivisionByZero
	ErrDimensionMismatch   = dual.ErrDimensionMismatch
	ErrUnsupportedExponent = dual.ErrUnsupportedExponent
)

// Seed constructs the dual for the variable being differentiated
// (derivative 1).
func Seed(value float64) Dual {
	return dual.Seed(value)
}

// Const constructs the dual for a constant or an undifferentiated
// variable (derivative 0).
func Const(value float64) Dual {
	return dual.Const(value)
}

// SeedVector constructs independent variable index of n total variables,
// with a one-hot gradient.
func SeedVector(value float64, index, n int) (Vector, error) {
	return dual.SeedVector(value, index, n)
}

// ConstVector constructs a constant with a zero gradient of length n.
func ConstVector(value float64, n int) Vector {
	return dual.ConstVector(value, n)
}
