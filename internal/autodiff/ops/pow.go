package ops

import "math"

// PowOp raises a base to an integer exponent: output = base^n.
//
// Inputs are [base, n]. The exponent travels as a graph node so that Pow has
// the same two-input shape as Add and Mul, but it is a constant: Backward
// returns a single entry and n never accumulates gradient.
type PowOp struct{}

// Kind returns KindPow.
func (PowOp) Kind() Kind { return KindPow }

// Arity returns 2.
func (PowOp) Arity() int { return 2 }

// Forward returns base^n. A zero base with a negative exponent yields +Inf.
func (PowOp) Forward(inputs []float32) float32 {
	return float32(math.Pow(float64(inputs[0]), float64(inputs[1])))
}

// Backward computes the gradient for the base only.
//
// d(x^n)/dx = n * x^(n-1), so grad_base = n * base^(n-1) * outputGrad.
func (PowOp) Backward(inputs []float32, _, outputGrad float32) []float32 {
	base, n := float64(inputs[0]), float64(inputs[1])
	return []float32{float32(n*math.Pow(base, n-1)) * outputGrad}
}
