// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand/v2"

	"github.com/born-ml/ketting/internal/autodiff"
	"github.com/born-ml/ketting/internal/nn"
)

// Module interface defines the common interface for all neural network modules.
type Module = nn.Module

// Layers

// Neuron computes tanh(b + Σ xᵢ·wᵢ).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nIn uniformly initialized weights.
func NewNeuron(nIn int, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(nIn, rng)
}

// Layer represents a fully connected layer of neurons.
type Layer = nn.Layer

// NewLayer creates a layer of nOut neurons with nIn inputs each.
//
// Example:
//
//	layer := nn.NewLayer(3, 4, rng)
func NewLayer(nIn, nOut int, rng *rand.Rand) *Layer {
	return nn.NewLayer(nIn, nOut, rng)
}

// Network represents a multi-layer perceptron.
type Network = nn.Network

// NewNetwork creates a network with nIn inputs and one layer per size.
//
// Example:
//
//	model := nn.NewNetwork(3, []int{4, 4, 1}, rng)
func NewNetwork(nIn int, sizes []int, rng *rand.Rand) *Network {
	return nn.NewNetwork(nIn, sizes, rng)
}

// Loss functions

// SumSquaredError computes Σ (targets[i] - predictions[i])².
func SumSquaredError(predictions, targets []*autodiff.Value) *autodiff.Value {
	return nn.SumSquaredError(predictions, targets)
}

// MSE computes the mean squared error.
func MSE(predictions, targets []*autodiff.Value) *autodiff.Value {
	return nn.MSE(predictions, targets)
}

// Utilities

// Values wraps plain numbers in leaf nodes, preserving order.
func Values(data ...float32) []*autodiff.Value {
	return nn.Values(data...)
}

// ZeroGrad clears the gradient of every parameter.
func ZeroGrad(params []*autodiff.Value) {
	nn.ZeroGrad(params)
}
