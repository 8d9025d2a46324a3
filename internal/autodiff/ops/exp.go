package ops

import "math"

// ExpOp represents the exponential operation: y = exp(x).
//
// Backward pass:
//   - d(exp(x))/dx = exp(x) = y
//   - grad_input = grad_output * output
type ExpOp struct{}

// Kind returns KindExp.
func (ExpOp) Kind() Kind { return KindExp }

// Arity returns 1.
func (ExpOp) Arity() int { return 1 }

// Forward returns e^x.
func (ExpOp) Forward(inputs []float32) float32 {
	return float32(math.Exp(float64(inputs[0])))
}

// Backward computes input gradient for exp.
//
// Since d(exp(x))/dx = exp(x), and we already have exp(x) as output:
// grad_input = grad_output * output.
func (ExpOp) Backward(_ []float32, output, outputGrad float32) []float32 {
	return []float32{output * outputGrad}
}
