// Package autodiff implements scalar reverse-mode automatic differentiation.
//
// Architecture:
//   - Value: a graph node holding data, an accumulated gradient and its operands
//   - Operation interface (package ops): forward formula and local backward rule
//   - TopologicalOrder: orders every node reachable from a root after its operands
//   - Backward: seeds the root and applies local rules in reverse order
//
// Graphs are define-by-run: every arithmetic method evaluates eagerly and
// allocates a new node, so the graph of a forward pass is exactly the
// sequence of calls that produced it.
//
// Usage:
//
//	x := autodiff.NewValue(2)
//	y := x.Mul(x) // y = x²
//
//	autodiff.Backward(y)
//	fmt.Println(x.Grad()) // dy/dx = 2x = 4
package autodiff

import (
	"github.com/born-ml/ketting/internal/autodiff/ops"
)

// Add returns a new node v + other.
func (v *Value) Add(other *Value) *Value {
	return newOpValue(ops.Add, v, other)
}

// Mul returns a new node v * other.
func (v *Value) Mul(other *Value) *Value {
	return newOpValue(ops.Mul, v, other)
}

// Tanh returns a new node tanh(v).
func (v *Value) Tanh() *Value {
	return newOpValue(ops.Tanh, v)
}

// Exp returns a new node e^v.
func (v *Value) Exp() *Value {
	return newOpValue(ops.Exp, v)
}

// Pow returns a new node v^n.
//
// The exponent is stored as a leaf child so the node has two operands, but
// it never receives gradient.
func (v *Value) Pow(n int) *Value {
	return newOpValue(ops.Pow, v, NewValue(float32(n)))
}

// Neg returns -v, built as v * -1.
func (v *Value) Neg() *Value {
	return v.MulScalar(-1)
}

// Sub returns v - other, built as v + (-other).
func (v *Value) Sub(other *Value) *Value {
	return v.Add(other.Neg())
}

// Div returns v / other, built as v * other^-1.
// Dividing by a zero-valued node yields ±Inf or NaN without signaling.
func (v *Value) Div(other *Value) *Value {
	return v.Mul(other.Pow(-1))
}

// AddScalar returns v + s, with s wrapped in a fresh leaf.
func (v *Value) AddScalar(s float32) *Value {
	return v.Add(NewValue(s))
}

// SubScalar returns v - s.
func (v *Value) SubScalar(s float32) *Value {
	return v.Add(NewValue(-s))
}

// MulScalar returns v * s, with s wrapped in a fresh leaf.
func (v *Value) MulScalar(s float32) *Value {
	return v.Mul(NewValue(s))
}

// DivScalar returns v / s, built as v * s^-1.
func (v *Value) DivScalar(s float32) *Value {
	return v.Div(NewValue(s))
}

// Sum folds values left to right with Add: ((v0 + v1) + v2) + ...
// A single value is returned unchanged. Sum panics on an empty list.
func Sum(values ...*Value) *Value {
	if len(values) == 0 {
		panic("autodiff: Sum of no values")
	}
	out := values[0]
	for _, v := range values[1:] {
		out = out.Add(v)
	}
	return out
}
