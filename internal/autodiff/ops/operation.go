// Package ops defines the closed set of scalar operations supported by the
// autodiff engine.
//
// Each operation implements the Operation interface, which provides:
//   - Forward pass: the value of the node, computed eagerly from its inputs
//   - Backward pass: the gradient contribution for each differentiable input
//
// Supported operations:
//   - Add: a + b (d(a+b)/da = 1, d(a+b)/db = 1)
//   - Mul: a * b (d(a*b)/da = b, d(a*b)/db = a)
//   - Tanh: tanh(x) (d(tanh(x))/dx = 1 - tanh²(x))
//   - Exp: exp(x) (d(exp(x))/dx = exp(x))
//   - Pow: x^n for an integer n (d(x^n)/dx = n*x^(n-1), no gradient for n)
//
// Subtraction, negation and division are composed from these by the
// autodiff package and need no rule of their own.
package ops

import "fmt"

// Kind tags how a node was produced.
type Kind uint8

// Operation kinds. KindLeaf marks inputs and parameters.
const (
	KindLeaf Kind = iota
	KindAdd
	KindMul
	KindTanh
	KindExp
	KindPow
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindAdd:
		return "add"
	case KindMul:
		return "mul"
	case KindTanh:
		return "tanh"
	case KindExp:
		return "exp"
	case KindPow:
		return "pow"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Operation represents a differentiable scalar operation in the computation graph.
//
// Operations are stateless: the inputs and the output live on the graph node,
// and are handed to the operation when a value or a gradient is needed.
type Operation interface {
	// Kind returns the tag recorded on nodes produced by this operation.
	Kind() Kind

	// Arity returns the number of inputs (graph children) the operation takes.
	Arity() int

	// Forward computes the output value from the current input values.
	Forward(inputs []float32) float32

	// Backward computes gradient contributions for inputs given the output
	// value and the upstream gradient.
	//
	// The returned slice is ordered like inputs. It may be shorter than
	// inputs: trailing inputs without an entry receive no gradient.
	//
	// Example for Mul:
	//   inputs: [a, b]
	//   outputGrad: dL/d(a*b)
	//   returns: [b * dL/d(a*b), a * dL/d(a*b)]
	Backward(inputs []float32, output, outputGrad float32) []float32
}

// Singleton instances. Operations carry no state, so nodes share them.
var (
	Add  Operation = AddOp{}
	Mul  Operation = MulOp{}
	Tanh Operation = TanhOp{}
	Exp  Operation = ExpOp{}
	Pow  Operation = PowOp{}
)
