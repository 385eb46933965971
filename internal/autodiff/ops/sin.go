package ops

import (
	"github.com/born-ml/chainrule/internal/autodiff"
	"github.com/born-ml/chainrule/internal/tensor"
)

// SinOp represents the sine operation: y = sin(x).
//
// Backward pass:
//   - d(sin(x))/dx = cos(x)
//   - grad_input = grad_output * cos(input)
type SinOp struct{}

// Name returns "Sin".
func (SinOp) Name() string { return "Sin" }

// Forward computes sin(x).
func (SinOp) Forward(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	return tensor.Sin(x), nil
}

// Backward computes gy * cos(x).
func (SinOp) Backward(x, _, gy *tensor.RawTensor) (*tensor.RawTensor, error) {
	return tensor.Mul(gy, tensor.Cos(x)), nil
}

// Sin applies a new SinOp to x.
func Sin(x *autodiff.Variable) (*autodiff.Variable, error) {
	return autodiff.Apply(SinOp{}, x)
}
