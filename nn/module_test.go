// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/ketting/autodiff"
	"github.com/born-ml/ketting/nn"
)

// TestModuleInterface verifies that concrete types implement Module interface.
func TestModuleInterface(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))

	tests := []struct {
		name   string
		module nn.Module
	}{
		{
			name:   "Layer",
			module: nn.NewLayer(3, 2, rng),
		},
		{
			name:   "Network",
			module: nn.NewNetwork(3, []int{4, 2}, rng),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.module.Forward(nn.Values(1, 2, 3))
			assert.Len(t, out, 2)

			params := tt.module.Parameters()
			assert.NotEmpty(t, params)
		})
	}
}

func TestTrainingStep(t *testing.T) {
	model := nn.NewNetwork(2, []int{3, 1}, rand.New(rand.NewPCG(9, 9)))
	params := model.Parameters()

	loss := nn.MSE(model.Forward(nn.Values(0.5, -1)), nn.Values(1))
	nn.ZeroGrad(params)
	autodiff.Backward(loss)

	nonZero := 0
	for _, p := range params {
		if p.Grad() != 0 {
			nonZero++
		}
	}
	assert.Positive(t, nonZero)
}
