package nn

import (
	"math/rand/v2"

	"github.com/born-ml/ketting/internal/autodiff"
)

// Uniform creates a leaf parameter with a value drawn from U(-1, 1).
//
// A nil rng uses the process-wide random source.
func Uniform(rng *rand.Rand) *autodiff.Value {
	return autodiff.NewValue(float32(uniform(rng)*2 - 1))
}

func uniform(rng *rand.Rand) float64 {
	if rng == nil {
		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		return rand.Float64()
	}
	return rng.Float64()
}
