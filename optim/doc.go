// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training neural networks.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/ketting/autodiff"
//	    "github.com/born-ml/ketting/nn"
//	    "github.com/born-ml/ketting/optim"
//	)
//
//	func main() {
//	    model := nn.NewNetwork(3, []int{4, 4, 1}, nil)
//
//	    // Create optimizer
//	    optimizer := optim.NewSGD(
//	        model.Parameters(),
//	        optim.SGDConfig{
//	            LR: 0.05,
//	        },
//	    )
//
//	    // Training loop
//	    for step := range 40 {
//	        loss := computeLoss(model)
//	        optimizer.ZeroGrad()
//	        autodiff.Backward(loss)
//	        optimizer.Step()
//	    }
//	}
//
// # Gradient Handling
//
// Step reads the gradients left on parameters by autodiff.Backward and does
// not clear them. Call ZeroGrad before each backward pass unless gradients
// from several passes are meant to be summed.
package optim
