package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/ketting/internal/autodiff"
)

// Layer is a fully connected layer of independent neurons.
//
// Every neuron sees all inputs and contributes one output:
//
//	outputs[j] = tanh(b_j + Σ inputs[i]·w_ji)
//
// Example:
//
//	layer := nn.NewLayer(3, 4, rng)
//	out := layer.Forward(nn.Values(2, 3, -1)) // 4 outputs
type Layer struct {
	nIn     int
	neurons []*Neuron
}

// NewLayer creates a layer of nOut neurons, each with nIn inputs.
// It panics if either size is not positive.
func NewLayer(nIn, nOut int, rng *rand.Rand) *Layer {
	if nOut <= 0 {
		panic(fmt.Sprintf("nn: Layer needs a positive output count, got %d", nOut))
	}

	neurons := make([]*Neuron, nOut)
	for i := range neurons {
		neurons[i] = NewNeuron(nIn, rng)
	}

	return &Layer{
		nIn:     nIn,
		neurons: neurons,
	}
}

// Forward returns one output per neuron, in neuron order.
// It panics if len(inputs) differs from the layer's input count.
func (l *Layer) Forward(inputs []*autodiff.Value) []*autodiff.Value {
	if len(inputs) != l.nIn {
		panic(fmt.Sprintf("nn: Layer expects %d inputs, got %d", l.nIn, len(inputs)))
	}

	outputs := make([]*autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		outputs[i] = n.Forward(inputs)
	}
	return outputs
}

// Parameters concatenates the neurons' parameters in neuron order.
func (l *Layer) Parameters() []*autodiff.Value {
	params := make([]*autodiff.Value, 0, len(l.neurons)*(l.nIn+1))
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// Neurons returns the layer's neurons.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// InFeatures returns the number of inputs.
func (l *Layer) InFeatures() int {
	return l.nIn
}

// OutFeatures returns the number of outputs.
func (l *Layer) OutFeatures() int {
	return len(l.neurons)
}
