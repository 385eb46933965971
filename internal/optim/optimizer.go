// Package optim implements gradient-descent optimizers on top of autodiff.
//
// Variables are immutable once built, so an optimizer step returns a fresh
// root Variable holding the updated value; the next iteration builds a new
// graph from it.
//
// Example usage:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.1})
//	x, err := optim.Minimize(ops.Square, x0, sgd, 100)
package optim

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/chainrule/internal/autodiff"
)

// ErrNoGradient is returned by Step when the Variable has no gradient.
var ErrNoGradient = errors.New("variable has no gradient")

// Optimizer produces an updated root Variable from one that has been
// through Backward.
type Optimizer interface {
	// Step returns a new root Variable with the update applied to x's data.
	Step(x *autodiff.Variable) (*autodiff.Variable, error)

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// Minimize runs iters rounds of forward, backward and opt.Step on f,
// starting from x, and returns the last iterate.
func Minimize(f autodiff.DiffFunc, x *autodiff.Variable, opt Optimizer, iters int) (*autodiff.Variable, error) {
	for i := 0; i < iters; i++ {
		y, err := f(x)
		if err != nil {
			return nil, errors.WithMessagef(err, "iteration %d forward", i)
		}
		if err := y.Backward(); err != nil {
			return nil, errors.WithMessagef(err, "iteration %d backward", i)
		}
		if klog.V(2).Enabled() {
			klog.Infof("minimize: iteration %d loss %s", i, y.Data())
		}
		if x, err = opt.Step(x); err != nil {
			return nil, errors.WithMessagef(err, "iteration %d step", i)
		}
	}
	return x, nil
}
