package optim

import (
	"github.com/pkg/errors"

	"github.com/born-ml/chainrule/internal/autodiff"
	"github.com/born-ml/chainrule/internal/tensor"
)

// SGD implements gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	x = x - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	x = x - lr * velocity
//
// The velocity is kept between steps, so one SGD instance follows a single
// sequence of iterates.
type SGD struct {
	lr       float64
	momentum float64
	velocity *tensor.RawTensor
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		lr:       config.LR,
		momentum: config.Momentum,
	}
}

// Step performs a single optimization step.
func (s *SGD) Step(x *autodiff.Variable) (*autodiff.Variable, error) {
	if x == nil || x.Data() == nil {
		return nil, errors.Wrap(autodiff.ErrNoData, "sgd step")
	}
	grad := x.Grad()
	if grad == nil {
		return nil, errors.Wrap(ErrNoGradient, "sgd step")
	}

	update := grad
	if s.momentum != 0 {
		if s.velocity == nil {
			s.velocity = tensor.ZerosLike(grad)
		}
		s.velocity = tensor.Add(tensor.MulScalar(s.velocity, s.momentum), grad)
		update = s.velocity
	}

	return autodiff.NewVariable(tensor.Sub(x.Data(), tensor.MulScalar(update, s.lr)))
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// Reset drops the momentum buffer.
func (s *SGD) Reset() {
	s.velocity = nil
}
