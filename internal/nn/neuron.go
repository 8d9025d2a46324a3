package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/ketting/internal/autodiff"
)

// Neuron computes tanh(b + Σ xᵢ·wᵢ) over its inputs.
//
// Weights and bias are leaf values initialized uniformly in [-1, 1).
type Neuron struct {
	weights []*autodiff.Value
	bias    *autodiff.Value
}

// NewNeuron creates a neuron with nIn weights.
// It panics if nIn is not positive.
func NewNeuron(nIn int, rng *rand.Rand) *Neuron {
	if nIn <= 0 {
		panic(fmt.Sprintf("nn: Neuron needs a positive input count, got %d", nIn))
	}

	weights := make([]*autodiff.Value, nIn)
	for i := range weights {
		weights[i] = Uniform(rng)
	}

	return &Neuron{
		weights: weights,
		bias:    Uniform(rng),
	}
}

// Forward builds tanh(b + x₀·w₀ + x₁·w₁ + ...) from the current parameter values.
//
// The sum starts from the bias and adds the products in input order.
// It panics if len(inputs) differs from the neuron's input count.
func (n *Neuron) Forward(inputs []*autodiff.Value) *autodiff.Value {
	if len(inputs) != len(n.weights) {
		panic(fmt.Sprintf("nn: Neuron expects %d inputs, got %d", len(n.weights), len(inputs)))
	}

	act := n.bias
	for i, x := range inputs {
		act = act.Add(x.Mul(n.weights[i]))
	}
	return act.Tanh()
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*autodiff.Value {
	params := make([]*autodiff.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// Weights returns the weight parameters in input order.
func (n *Neuron) Weights() []*autodiff.Value {
	return n.weights
}

// Bias returns the bias parameter.
func (n *Neuron) Bias() *autodiff.Value {
	return n.bias
}

// NumInputs returns the number of inputs the neuron accepts.
func (n *Neuron) NumInputs() int {
	return len(n.weights)
}
