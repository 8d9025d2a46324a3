package ops

import "math"

// TanhOp represents the hyperbolic tangent activation: tanh(x) = (exp(2x) - 1) / (exp(2x) + 1).
type TanhOp struct{}

// Kind returns KindTanh.
func (TanhOp) Kind() Kind { return KindTanh }

// Arity returns 1.
func (TanhOp) Arity() int { return 1 }

// Forward returns tanh(x).
func (TanhOp) Forward(inputs []float32) float32 {
	return float32(math.Tanh(float64(inputs[0])))
}

// Backward computes the gradient for tanh.
//
// For tanh(x):
// d(tanh(x))/dx = 1 - tanh²(x)
//
// Since we have the output tanh(x) already computed:
// grad_input = grad_output * (1 - output²).
func (TanhOp) Backward(_ []float32, output, outputGrad float32) []float32 {
	return []float32{(1 - output*output) * outputGrad}
}
