package nn

import (
	"fmt"

	"github.com/born-ml/ketting/internal/autodiff"
)

// SumSquaredError computes Σ (targets[i] - predictions[i])².
//
// It panics if the slices differ in length or are empty.
//
// Example:
//
//	preds := make([]*autodiff.Value, len(xs))
//	for i, x := range xs {
//	    preds[i] = model.Forward(x)[0]
//	}
//	loss := nn.SumSquaredError(preds, ys)
//	autodiff.Backward(loss)
func SumSquaredError(predictions, targets []*autodiff.Value) *autodiff.Value {
	if len(predictions) != len(targets) {
		panic(fmt.Sprintf("nn: SumSquaredError got %d predictions and %d targets", len(predictions), len(targets)))
	}
	if len(predictions) == 0 {
		panic("nn: SumSquaredError of no predictions")
	}

	terms := make([]*autodiff.Value, len(predictions))
	for i, pred := range predictions {
		terms[i] = targets[i].Sub(pred).Pow(2)
	}
	return autodiff.Sum(terms...)
}

// MSE computes the mean of the squared errors.
//
// Loss = SumSquaredError(predictions, targets) / n
func MSE(predictions, targets []*autodiff.Value) *autodiff.Value {
	return SumSquaredError(predictions, targets).DivScalar(float32(len(predictions)))
}
