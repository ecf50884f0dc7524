// Package main provides the rash CLI.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/sagnik1511/rash/autodiff"
	"github.com/sagnik1511/rash/nn"
	"github.com/sagnik1511/rash/optim"
	"github.com/sagnik1511/rash/tensor"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("rash %s\n", version)
	case "train":
		train(os.Args[2:])
	default:
		fmt.Printf("unknown command: %s\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("rash - reverse-mode autodiff engine for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  train      Train a small MLP to fit sin(x)")
}

// train fits a two-layer perceptron to sin(x) on [-pi, pi]. It exists to
// exercise the full stack end to end: forward graph construction, backward
// gradient flow through Linear and ReLU, and SGD parameter updates.
func train(args []string) {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	samples := fs.Int("samples", 256, "Number of training samples")
	hidden := fs.Int("hidden", 32, "Hidden layer width")
	iters := fs.Int("iters", 2000, "Training iterations")
	lr := fs.Float64("lr", 0.01, "Learning rate")
	seed := fs.Int64("seed", 42, "Seed for the input sampler")
	logEvery := fs.Int("log-every", 200, "Iterations between progress lines")
	fs.Parse(args)

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	rng := rand.New(rand.NewSource(*seed))
	xs := make([]float64, *samples)
	ys := make([]float64, *samples)
	for i := range xs {
		xs[i] = (rng.Float64()*2 - 1) * math.Pi
		ys[i] = math.Sin(xs[i])
	}

	x, err := autodiff.FromSlice(xs, tensor.Shape{*samples, 1}, false)
	if err != nil {
		log.WithError(err).Fatal("building input tensor")
	}
	y, err := autodiff.FromSlice(ys, tensor.Shape{*samples, 1}, false)
	if err != nil {
		log.WithError(err).Fatal("building target tensor")
	}

	model := nn.NewSequential(
		nn.NewLinear(1, *hidden),
		nn.NewReLU(),
		nn.NewLinear(*hidden, 1),
	)
	params := model.Parameters()
	numParams := 0
	for _, p := range params {
		numParams += p.Shape().NumElements()
	}

	log.WithFields(logrus.Fields{
		"samples": humanize.Comma(int64(*samples)),
		"params":  humanize.Comma(int64(numParams)),
		"hidden":  *hidden,
		"lr":      *lr,
	}).Info("starting training")

	optimizer := optim.NewSGD(params, optim.SGDConfig{LR: *lr})

	// Backward seeds the loss gradient with ones, so scaling the squared
	// errors by 1/n inside the graph makes the update a true MSE gradient.
	invN := autodiff.FromScalar(1/float64(*samples), false)

	start := time.Now()
	for i := 1; i <= *iters; i++ {
		optimizer.ZeroGrad()

		pred := model.Forward(x)
		diff := pred.Sub(y)
		loss := diff.Mul(diff).Mul(invN)

		loss.Backward()
		optimizer.Step()

		if i%*logEvery == 0 || i == *iters {
			mse, err := loss.Value().Sum(nil, false).Item()
			if err != nil {
				log.WithError(err).Fatal("reading loss")
			}
			log.WithFields(logrus.Fields{
				"iter": i,
				"mse":  fmt.Sprintf("%.6f", mse),
			}).Info("progress")
		}
	}

	log.WithFields(logrus.Fields{
		"iters":   humanize.Comma(int64(*iters)),
		"elapsed": time.Since(start).Round(time.Millisecond),
	}).Info("training finished")
}
