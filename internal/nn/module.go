// Package nn implements neural network modules on top of scalar autodiff values.
//
// This package provides building blocks for constructing small networks:
//   - Module interface: Base interface for all NN components
//   - Neuron: tanh(Σ xᵢ·wᵢ + b) over scalar values
//   - Layer: Neurons sharing the same inputs
//   - Network: Layers chained output to input (a multi-layer perceptron)
//   - Loss functions: SumSquaredError, MSE
//
// Every Forward call builds a fresh graph from the current parameter values.
// Parameters are long-lived leaf values shared by all those graphs.
package nn

import (
	"github.com/born-ml/ketting/internal/autodiff"
)

// Module is the base interface for all neural network components.
//
// Every NN module must implement:
//   - Forward: Compute outputs from inputs
//   - Parameters: Return all trainable parameters
//
// Modules can be composed to build larger architectures:
//
//	model := nn.NewNetwork(3, []int{4, 4, 1}, rng)
//	out := model.Forward(nn.Values(2, 3, -1))
type Module interface {
	// Forward computes the outputs of the module given its inputs.
	//
	// The number of inputs must match the width the module was built for;
	// a mismatch panics.
	Forward(inputs []*autodiff.Value) []*autodiff.Value

	// Parameters returns all trainable parameters of this module.
	//
	// The slice holds the live parameter nodes, in the same order on every
	// call, so optimizers can pair state with parameters by position.
	Parameters() []*autodiff.Value
}
