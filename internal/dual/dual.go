// Package dual implements forward-mode automatic differentiation with
// dual numbers.
//
// A dual number carries a value together with its derivative. Arithmetic
// on duals propagates both channels at once using the product, quotient
// and chain rules, so evaluating an expression built from seeded duals
// yields the exact derivative alongside the value, with no expression
// graph and no finite differences.
//
// Two variants are provided:
//   - Dual: a single directional derivative (one independent variable).
//   - Vector: an N-length gradient, one partial per independent variable,
//     computing a full Jacobian row in one evaluation pass.
package dual

import "fmt"

// Dual is a forward-mode dual number: a value paired with the derivative
// of that value with respect to one independent variable.
//
// Dual is an immutable value type. Operations return new values and never
// share state with their operands.
type Dual struct {
	Value float64 // function value
	Deriv float64 // derivative with respect to the seeded variable
}

// Seed constructs the dual for the variable being differentiated:
// derivative 1.
func Seed(value float64) Dual {
	return Dual{Value: value, Deriv: 1}
}

// Const constructs the dual for a constant (or any variable not being
// differentiated): derivative 0. Bare scalars enter expressions through
// Const, on either operand side.
func Const(value float64) Dual {
	return Dual{Value: value, Deriv: 0}
}

// Add returns f + g.
func (f Dual) Add(g Dual) Dual {
	return Dual{
		Value: f.Value + g.Value,
		Deriv: f.Deriv + g.Deriv,
	}
}

// Sub returns f - g.
func (f Dual) Sub(g Dual) Dual {
	return Dual{
		Value: f.Value - g.Value,
		Deriv: f.Deriv - g.Deriv,
	}
}

// Mul returns f * g using the product rule:
// (f*g)' = f*g' + f'*g.
func (f Dual) Mul(g Dual) Dual {
	return Dual{
		Value: f.Value * g.Value,
		Deriv: f.Value*g.Deriv + f.Deriv*g.Value,
	}
}

// Div returns f / g using the quotient rule:
// (f/g)' = (f'*g - f*g') / g².
//
// Returns ErrDivisionByZero when g.Value is exactly zero; no partial
// result is produced.
func (f Dual) Div(g Dual) (Dual, error) {
	if g.Value == 0 {
		return Dual{}, fmt.Errorf("Div: %w", ErrDivisionByZero)
	}
	return Dual{
		Value: f.Value / g.Value,
		Deriv: (f.Deriv*g.Value - f.Value*g.Deriv) / (g.Value * g.Value),
	}, nil
}

// Pow returns f**n for a non-negative integer exponent, with derivative
// n * f.Value^(n-1) * f.Deriv from the product rule.
//
// The value and the v^(n-1) factor are accumulated by repeated
// multiplication rather than generic exponentiation-by-squaring; the
// exponents in play are small and this keeps the derivative rule direct.
// Negative exponents return ErrUnsupportedExponent (use Div explicitly).
func (f Dual) Pow(n int) (Dual, error) {
	if n < 0 {
		return Dual{}, fmt.Errorf("Pow: exponent %d: %w", n, ErrUnsupportedExponent)
	}
	if n == 0 {
		return Const(1), nil
	}
	return Dual{
		Value: intPow(f.Value, n),
		Deriv: float64(n) * intPow(f.Value, n-1) * f.Deriv,
	}, nil
}

// intPow computes v**n for n >= 0 by repeated multiplication.
func intPow(v float64, n int) float64 {
	p := 1.0
	for i := 0; i < n; i++ {
		p *= v
	}
	return p
}
