package ops

// MulOp represents scalar multiplication: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
type MulOp struct{}

// Kind returns KindMul.
func (MulOp) Kind() Kind { return KindMul }

// Arity returns 2.
func (MulOp) Arity() int { return 2 }

// Forward returns a * b.
func (MulOp) Forward(inputs []float32) float32 {
	return inputs[0] * inputs[1]
}

// Backward computes input gradients for multiplication.
func (MulOp) Backward(inputs []float32, _, outputGrad float32) []float32 {
	a, b := inputs[0], inputs[1]
	return []float32{b * outputGrad, a * outputGrad}
}
