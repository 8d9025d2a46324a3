// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gradcheck verifies autodiff gradients against centered finite
// differences.
package gradcheck

import (
	"github.com/born-ml/ketting/internal/autodiff"
	"github.com/born-ml/ketting/internal/gradcheck"
)

// Config controls the finite-difference step and the tolerance.
type Config = gradcheck.Config

// Report holds analytic and numeric gradients per parameter.
type Report = gradcheck.Report

// MismatchError reports the first parameter outside the tolerance.
type MismatchError = gradcheck.MismatchError

// Common errors.
var (
	ErrNoParameters = gradcheck.ErrNoParameters
	ErrMismatch     = gradcheck.ErrMismatch
)

// Check compares backpropagated gradients of loss with respect to params
// against finite-difference estimates. loss must rebuild its graph from the
// current parameter values on every call.
func Check(params []*autodiff.Value, loss func() *autodiff.Value, config Config) (*Report, error) {
	return gradcheck.Check(params, loss, config)
}
