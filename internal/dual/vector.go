package dual

import "fmt"

// Vector is a forward-mode dual number whose derivative channel is a
// gradient: one partial derivative per independent variable. Evaluating
// an expression built from seeded Vectors yields, in one pass, the full
// row of partials of that expression with respect to all N inputs —
// replacing N separate Dual evaluations.
//
// All operands in one expression must carry the same gradient length N.
// Operations allocate fresh gradient slices; a Vector never aliases the
// gradient storage of its operands and is safe to reuse across
// expressions.
type Vector struct {
	Value float64   // function value
	Grad  []float64 // partial derivatives, one per independent variable
}

// SeedVector constructs independent variable index of n total variables:
// the gradient is one-hot at index.
func SeedVector(value float64, index, n int) (Vector, error) {
	if n <= 0 {
		return Vector{}, fmt.Errorf("SeedVector: dimension %d: %w", n, ErrDimensionMismatch)
	}
	if index < 0 || index >= n {
		return Vector{}, fmt.Errorf("SeedVector: index %d out of range for %d variables: %w",
			index, n, ErrDimensionMismatch)
	}
	grad := make([]float64, n)
	grad[index] = 1
	return Vector{Value: value, Grad: grad}, nil
}

// ConstVector constructs a constant with a zero gradient of length n.
func ConstVector(value float64, n int) Vector {
	return Vector{Value: value, Grad: make([]float64, n)}
}

// Dim returns the number of independent variables N.
func (f Vector) Dim() int {
	return len(f.Grad)
}

// checkDim verifies both operands carry the same gradient length.
func (f Vector) checkDim(op string, g Vector) error {
	if len(f.Grad) != len(g.Grad) {
		return fmt.Errorf("%s: operand dimensions %d and %d: %w",
			op, len(f.Grad), len(g.Grad), ErrDimensionMismatch)
	}
	return nil
}

// Add returns f + g.
func (f Vector) Add(g Vector) (Vector, error) {
	if err := f.checkDim("Add", g); err != nil {
		return Vector{}, err
	}
	grad := make([]float64, len(f.Grad))
	for i := range grad {
		grad[i] = f.Grad[i] + g.Grad[i]
	}
	return Vector{Value: f.Value + g.Value, Grad: grad}, nil
}

// Sub returns f - g.
func (f Vector) Sub(g Vector) (Vector, error) {
	if err := f.checkDim("Sub", g); err != nil {
		return Vector{}, err
	}
	grad := make([]float64, len(f.Grad))
	for i := range grad {
		grad[i] = f.Grad[i] - g.Grad[i]
	}
	return Vector{Value: f.Value - g.Value, Grad: grad}, nil
}

// Mul returns f * g using the product rule applied elementwise to the
// gradient: ∇(f*g) = f.Value*∇g + g.Value*∇f.
func (f Vector) Mul(g Vector) (Vector, error) {
	if err := f.checkDim("Mul", g); err != nil {
		return Vector{}, err
	}
	grad := make([]float64, len(f.Grad))
	for i := range grad {
		grad[i] = f.Value*g.Grad[i] + f.Grad[i]*g.Value
	}
	return Vector{Value: f.Value * g.Value, Grad: grad}, nil
}

// Div returns f / g using the quotient rule applied elementwise:
// ∇(f/g) = (g.Value*∇f - f.Value*∇g) / g.Value².
//
// Returns ErrDivisionByZero when g.Value is exactly zero.
func (f Vector) Div(g Vector) (Vector, error) {
	if err := f.checkDim("Div", g); err != nil {
		return Vector{}, err
	}
	if g.Value == 0 {
		return Vector{}, fmt.Errorf("Div: %w", ErrDivisionByZero)
	}
	gg := g.Value * g.Value
	grad := make([]float64, len(f.Grad))
	for i := range grad {
		grad[i] = (f.Grad[i]*g.Value - f.Value*g.Grad[i]) / gg
	}
	return Vector{Value: f.Value / g.Value, Grad: grad}, nil
}

// Scale returns c * f for a bare scalar c.
func (f Vector) Scale(c float64) Vector {
	grad := make([]float64, len(f.Grad))
	for i := range grad {
		grad[i] = c * f.Grad[i]
	}
	return Vector{Value: c * f.Value, Grad: grad}
}

// Pow returns f**n for a non-negative integer exponent. The gradient is
// n * f.Value^(n-1) * ∇f from the product rule, the same direct form as
// Dual.Pow. Negative exponents return ErrUnsupportedExponent.
func (f Vector) Pow(n int) (Vector, error) {
	if n < 0 {
		return Vector{}, fmt.Errorf("Pow: exponent %d: %w", n, ErrUnsupportedExponent)
	}
	if n == 0 {
		return ConstVector(1, len(f.Grad)), nil
	}
	scale := float64(n) * intPow(f.Value, n-1)
	grad := make([]float64, len(f.Grad))
	for i := range grad {
		grad[i] = scale * f.Grad[i]
	}
	return Vector{Value: intPow(f.Value, n), Grad: grad}, nil
}
