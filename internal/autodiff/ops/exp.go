package ops

import (
	"github.com/born-ml/chainrule/internal/autodiff"
	"github.com/born-ml/chainrule/internal/tensor"
)

// ExpOp represents the exponential operation: y = exp(x).
//
// Backward pass:
//   - d(exp(x))/dx = exp(x) = y
//   - grad_input = grad_output * output
type ExpOp struct{}

// Name returns "Exp".
func (ExpOp) Name() string { return "Exp" }

// Forward computes exp(x).
func (ExpOp) Forward(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	return tensor.Exp(x), nil
}

// Backward computes input gradient for exp.
//
// Since d(exp(x))/dx = exp(x), and we already have exp(x) as output:
// grad_input = grad_output * output.
func (ExpOp) Backward(_, y, gy *tensor.RawTensor) (*tensor.RawTensor, error) {
	return tensor.Mul(y, gy), nil
}

// Exp applies a new ExpOp to x.
func Exp(x *autodiff.Variable) (*autodiff.Variable, error) {
	return autodiff.Apply(ExpOp{}, x)
}
