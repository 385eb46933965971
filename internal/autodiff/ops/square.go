package ops

import (
	"github.com/born-ml/chainrule/internal/autodiff"
	"github.com/born-ml/chainrule/internal/tensor"
)

// SquareOp represents the square operation: y = x².
//
// Backward pass:
//   - d(x²)/dx = 2x
//   - grad_input = 2 * input * grad_output
type SquareOp struct{}

// Name returns "Square".
func (SquareOp) Name() string { return "Square" }

// Forward computes x².
func (SquareOp) Forward(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	return tensor.Pow(x, 2), nil
}

// Backward computes 2 * x * gy, with x the recorded forward input.
func (SquareOp) Backward(x, _, gy *tensor.RawTensor) (*tensor.RawTensor, error) {
	return tensor.Mul(tensor.MulScalar(x, 2), gy), nil
}

// Square applies a new SquareOp to x.
func Square(x *autodiff.Variable) (*autodiff.Variable, error) {
	return autodiff.Apply(SquareOp{}, x)
}
