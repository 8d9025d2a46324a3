// Package optim implements optimization algorithms for training neural networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers read the gradients accumulated on parameter values by
// autodiff.Backward and update the values in place. They never reset
// gradients on their own; call ZeroGrad before the next backward pass.
//
// Example usage:
//
//	// Create optimizer
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR: 0.05,
//	})
//
//	// Training loop
//	for step := range steps {
//	    loss := computeLoss(model, data)
//
//	    // Compute gradients
//	    optimizer.ZeroGrad()
//	    autodiff.Backward(loss)
//
//	    // Update parameters
//	    optimizer.Step()
//	}
package optim

// Optimizer is the base interface for all optimization algorithms.
//
// Optimizers update model parameters based on computed gradients to
// minimize the loss function during training.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - ZeroGrad: Clear gradients before next iteration
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step applies gradient updates to all parameters.
	//
	// Reads each parameter's accumulated gradient and updates its data in-place.
	//
	// Example:
	//   autodiff.Backward(loss)
	//   optimizer.Step()
	Step()

	// ZeroGrad clears all parameter gradients.
	//
	// This should be called before each backward pass to prevent
	// gradient accumulation from previous iterations.
	ZeroGrad()

	// GetLR returns the current learning rate.
	//
	// Useful for monitoring and learning rate scheduling.
	GetLR() float32
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float32 // Learning rate
}
