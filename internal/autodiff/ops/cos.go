package ops

import (
	"github.com/born-ml/chainrule/internal/autodiff"
	"github.com/born-ml/chainrule/internal/tensor"
)

// CosOp represents the cosine operation: y = cos(x).
//
// Backward pass:
//   - d(cos(x))/dx = -sin(x)
//   - grad_input = -grad_output * sin(input)
type CosOp struct{}

// Name returns "Cos".
func (CosOp) Name() string { return "Cos" }

// Forward computes cos(x).
func (CosOp) Forward(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	return tensor.Cos(x), nil
}

// Backward computes -gy * sin(x).
func (CosOp) Backward(x, _, gy *tensor.RawTensor) (*tensor.RawTensor, error) {
	return tensor.Neg(tensor.Mul(gy, tensor.Sin(x))), nil
}

// Cos applies a new CosOp to x.
func Cos(x *autodiff.Variable) (*autodiff.Variable, error) {
	return autodiff.Apply(CosOp{}, x)
}
