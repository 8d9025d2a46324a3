// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks over scalar values.
//
// # Overview
//
// This package contains:
//   - Neuron: tanh(Σ xᵢ·wᵢ + b)
//   - Layer: neurons sharing the same inputs
//   - Network: layers chained output to input
//   - Loss functions: SumSquaredError, MSE
//   - Utilities: Module interface, Values, ZeroGrad
//
// # Basic Usage
//
//	import (
//	    "math/rand/v2"
//
//	    "github.com/born-ml/ketting/autodiff"
//	    "github.com/born-ml/ketting/nn"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewPCG(42, 0))
//	    model := nn.NewNetwork(3, []int{4, 4, 1}, rng)
//
//	    // Forward pass builds a fresh graph
//	    out := model.Forward(nn.Values(2, 3, -1))
//	    loss := nn.SumSquaredError(out, nn.Values(1))
//
//	    // Backward pass
//	    nn.ZeroGrad(model.Parameters())
//	    autodiff.Backward(loss)
//	}
//
// # Parameter Management
//
// Parameters are returned in a stable order (layer, then neuron, then
// weights before bias) so optimizers can keep per-parameter state:
//
//	for _, p := range model.Parameters() {
//	    p.SetData(p.Data() - 0.05*p.Grad())
//	}
package nn
