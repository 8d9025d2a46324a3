// Package gradcheck compares gradients computed by reverse-mode autodiff
// with centered finite-difference estimates.
//
// Example:
//
//	params := model.Parameters()
//	report, err := gradcheck.Check(params, func() *autodiff.Value {
//	    return nn.SumSquaredError(predict(model, xs), ys)
//	}, gradcheck.Config{})
package gradcheck

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"

	"github.com/born-ml/ketting/internal/autodiff"
)

// Config controls the finite-difference estimate and the comparison.
type Config struct {
	Step      float64 // Finite-difference step (default: 1e-2, sized for float32 data)
	Tolerance float64 // Allowed |analytic - numeric| per unit of max(1, |analytic|, |numeric|) (default: 1e-3)
}

// Report holds both gradients for every parameter.
type Report struct {
	Analytic []float64 // Indexed like the checked parameters
	Numeric  []float64 // Indexed like the checked parameters
	MaxDiff  float64   // Largest scaled deviation
	Worst    int       // Index of the parameter with MaxDiff
}

// Check builds loss once for backpropagation and repeatedly for the
// finite-difference estimate, then compares the two gradients.
//
// loss must build a fresh graph from the current parameter values on every
// call. Parameter data is restored before Check returns; parameter
// gradients are left holding the analytic result.
//
// The returned error wraps ErrMismatch (as a *MismatchError) for the first
// parameter outside the tolerance; the report is returned either way.
func Check(params []*autodiff.Value, loss func() *autodiff.Value, config Config) (*Report, error) {
	if len(params) == 0 {
		return nil, ErrNoParameters
	}

	// Set defaults
	if config.Step == 0 {
		config.Step = 1e-2
	}
	if config.Tolerance == 0 {
		config.Tolerance = 1e-3
	}

	origin := make([]float64, len(params))
	for i, p := range params {
		origin[i] = float64(p.Data())
	}

	autodiff.ZeroGrad(params...)
	autodiff.Backward(loss())

	analytic := make([]float64, len(params))
	for i, p := range params {
		analytic[i] = float64(p.Grad())
	}

	// Probes write into shared parameter nodes, so they must run sequentially.
	numeric := fd.Gradient(nil, func(x []float64) float64 {
		for i, p := range params {
			p.SetData(float32(x[i]))
		}
		return float64(loss().Data())
	}, origin, &fd.Settings{
		Formula:    fd.Central,
		Step:       config.Step,
		Concurrent: false,
	})

	for i, p := range params {
		p.SetData(float32(origin[i]))
	}

	report := &Report{
		Analytic: analytic,
		Numeric:  numeric,
	}

	var err error
	for i := range params {
		diff := scaledDiff(analytic[i], numeric[i])
		if diff > report.MaxDiff || math.IsNaN(diff) {
			report.MaxDiff = diff
			report.Worst = i
		}
		if err == nil && !(diff <= config.Tolerance) {
			err = &MismatchError{Index: i, Analytic: analytic[i], Numeric: numeric[i]}
		}
	}

	return report, err
}

// String summarizes the report in one line.
func (r *Report) String() string {
	return fmt.Sprintf("%d parameters, max deviation %.3g at parameter %d (analytic %g, numeric %g)",
		len(r.Analytic), r.MaxDiff, r.Worst, r.Analytic[r.Worst], r.Numeric[r.Worst])
}

func scaledDiff(a, n float64) float64 {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(n)))
	return math.Abs(a-n) / scale
}
