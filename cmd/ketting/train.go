package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/born-ml/ketting/autodiff"
	"github.com/born-ml/ketting/nn"
	"github.com/born-ml/ketting/optim"
)

// trainConfig holds the train subcommand flags.
type trainConfig struct {
	Steps     int
	LR        float64
	Momentum  float64
	Optimizer string
	Layers    []int
	Seed      uint64
}

func runTrain(args []string) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	steps := fs.Int("steps", 40, "Number of gradient steps")
	lr := fs.Float64("lr", 0.05, "Learning rate")
	momentum := fs.Float64("momentum", 0, "SGD momentum factor")
	optimizer := fs.String("optimizer", "sgd", "Optimizer: sgd or adam")
	layers := fs.String("layers", "4,4,1", "Comma-separated layer sizes; the last must be 1")
	seed := fs.Uint64("seed", 42, "Random seed for parameter initialization")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sizes, err := parseSizes(*layers)
	if err != nil {
		return err
	}

	cfg := trainConfig{
		Steps:     *steps,
		LR:        *lr,
		Momentum:  *momentum,
		Optimizer: *optimizer,
		Layers:    sizes,
		Seed:      *seed,
	}

	model, losses, err := train(cfg, log.Printf)
	if err != nil {
		return err
	}

	log.Printf("final loss: %.6f", losses[len(losses)-1])
	for i, p := range predict(model) {
		log.Printf("  input %v: target %+.1f, prediction %+.4f", datasetInputs[i], datasetTargets[i], p.Data())
	}
	return nil
}

// train runs the gradient descent loop and returns the model together with
// the loss observed at every step.
//
// Each step rebuilds the graph from the current parameters, zeroes the
// parameter gradients, backpropagates the loss and applies the update.
func train(cfg trainConfig, logf func(format string, args ...any)) (*nn.Network, []float32, error) {
	if cfg.Steps <= 0 {
		return nil, nil, fmt.Errorf("steps must be positive, got %d", cfg.Steps)
	}
	if cfg.Layers[len(cfg.Layers)-1] != 1 {
		return nil, nil, fmt.Errorf("last layer must have 1 output, got %d", cfg.Layers[len(cfg.Layers)-1])
	}

	model := nn.NewNetwork(len(datasetInputs[0]), cfg.Layers, rand.New(rand.NewPCG(cfg.Seed, 0)))
	params := model.Parameters()

	var opt optim.Optimizer
	switch cfg.Optimizer {
	case "sgd":
		opt = optim.NewSGD(params, optim.SGDConfig{LR: float32(cfg.LR), Momentum: float32(cfg.Momentum)})
	case "adam":
		opt = optim.NewAdam(params, optim.AdamConfig{LR: float32(cfg.LR)})
	default:
		return nil, nil, fmt.Errorf("unknown optimizer %q", cfg.Optimizer)
	}

	logf("training %d parameters with %s (lr=%g) for %d steps", len(params), cfg.Optimizer, opt.GetLR(), cfg.Steps)

	losses := make([]float32, 0, cfg.Steps)
	for step := range cfg.Steps {
		loss := datasetLoss(model)
		losses = append(losses, loss.Data())
		logf("%d loss: %v", step, loss)

		opt.ZeroGrad()
		autodiff.Backward(loss)
		opt.Step()
	}

	return model, losses, nil
}
