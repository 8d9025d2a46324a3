package nn

import (
	"github.com/born-ml/ketting/internal/autodiff"
)

// ZeroGrad clears the gradient of every parameter.
//
// This should be called before each backward pass to avoid
// accumulating gradients from previous iterations.
func ZeroGrad(params []*autodiff.Value) {
	autodiff.ZeroGrad(params...)
}

// Values wraps plain numbers in leaf nodes, preserving order.
//
// Example:
//
//	xs := nn.Values(2, 3, -1)
//	out := model.Forward(xs)
func Values(data ...float32) []*autodiff.Value {
	values := make([]*autodiff.Value, len(data))
	for i, d := range data {
		values[i] = autodiff.NewValue(d)
	}
	return values
}
