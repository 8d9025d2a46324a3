package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/born-ml/ketting/autodiff"
	"github.com/born-ml/ketting/nn"
)

// dataset is the four-example binary target problem used by the demo.
var (
	datasetInputs = [][]float32{
		{2.0, 3.0, -1.0},
		{3.0, -1.0, 0.5},
		{0.5, 1.0, 1.0},
		{1.0, 1.0, -1.0},
	}
	datasetTargets = []float32{1.0, -1.0, -1.0, 1.0}
)

// parseSizes parses a comma-separated list of positive layer sizes, e.g. "4,4,1".
func parseSizes(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	sizes := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid layer size %q: %w", f, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("layer size must be positive, got %d", n)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

// predict runs every dataset input through the model and returns the first
// output of each.
func predict(model *nn.Network) []*autodiff.Value {
	preds := make([]*autodiff.Value, len(datasetInputs))
	for i, x := range datasetInputs {
		preds[i] = model.Forward(nn.Values(x...))[0]
	}
	return preds
}

// datasetLoss builds the sum of squared errors over the dataset.
func datasetLoss(model *nn.Network) *autodiff.Value {
	return nn.SumSquaredError(predict(model), nn.Values(datasetTargets...))
}
