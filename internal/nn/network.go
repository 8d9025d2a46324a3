package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/ketting/internal/autodiff"
)

// Network is a multi-layer perceptron: layers chained so that each layer's
// outputs become the next layer's inputs.
//
// Example:
//
//	model := nn.NewNetwork(3, []int{4, 4, 1}, rng)
//	out := model.Forward(nn.Values(2, 3, -1))
//
// This is equivalent to:
//
//	h1 := layer1.Forward(inputs) // 3 → 4
//	h2 := layer2.Forward(h1)     // 4 → 4
//	out := layer3.Forward(h2)    // 4 → 1
type Network struct {
	layers []*Layer
}

// NewNetwork creates a network taking nIn inputs, with one layer per entry
// of sizes. It panics if nIn or any size is not positive, or if sizes is empty.
func NewNetwork(nIn int, sizes []int, rng *rand.Rand) *Network {
	if len(sizes) == 0 {
		panic("nn: Network needs at least one layer")
	}

	layers := make([]*Layer, len(sizes))
	in := nIn
	for i, out := range sizes {
		layers[i] = NewLayer(in, out, rng)
		in = out
	}

	return &Network{layers: layers}
}

// Forward applies all layers in sequence.
// It panics if len(inputs) differs from the network's input count.
func (m *Network) Forward(inputs []*autodiff.Value) []*autodiff.Value {
	if want := m.layers[0].InFeatures(); len(inputs) != want {
		panic(fmt.Sprintf("nn: Network expects %d inputs, got %d", want, len(inputs)))
	}

	out := inputs
	for _, l := range m.layers {
		out = l.Forward(out)
	}
	return out
}

// Parameters concatenates the layers' parameters in layer order.
func (m *Network) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// Layers returns the network's layers.
func (m *Network) Layers() []*Layer {
	return m.layers
}

// InFeatures returns the number of inputs.
func (m *Network) InFeatures() int {
	return m.layers[0].InFeatures()
}

// OutFeatures returns the number of outputs.
func (m *Network) OutFeatures() int {
	return m.layers[len(m.layers)-1].OutFeatures()
}
