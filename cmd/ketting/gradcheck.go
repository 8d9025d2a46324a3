package main

import (
	"flag"
	"log"
	"math/rand/v2"

	"github.com/born-ml/ketting/autodiff"
	"github.com/born-ml/ketting/gradcheck"
	"github.com/born-ml/ketting/nn"
)

func runGradCheck(args []string) error {
	fs := flag.NewFlagSet("gradcheck", flag.ContinueOnError)
	layers := fs.String("layers", "4,4,1", "Comma-separated layer sizes; the last must be 1")
	seed := fs.Uint64("seed", 42, "Random seed for parameter initialization")
	step := fs.Float64("step", 1e-2, "Finite-difference step")
	tolerance := fs.Float64("tolerance", 1e-2, "Allowed scaled deviation")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sizes, err := parseSizes(*layers)
	if err != nil {
		return err
	}

	model := nn.NewNetwork(len(datasetInputs[0]), sizes, rand.New(rand.NewPCG(*seed, 0)))

	report, err := gradcheck.Check(model.Parameters(), func() *autodiff.Value {
		return datasetLoss(model)
	}, gradcheck.Config{Step: *step, Tolerance: *tolerance})
	if report != nil {
		log.Printf("gradcheck: %v", report)
	}
	return err
}
