package ops

import (
	"github.com/born-ml/chainrule/internal/autodiff"
	"github.com/born-ml/chainrule/internal/tensor"
)

// TanhOp represents the hyperbolic tangent: y = tanh(x).
//
// Backward pass:
//   - d(tanh(x))/dx = 1 - tanh²(x) = 1 - y²
//   - grad_input = grad_output * (1 - output²)
type TanhOp struct{}

// Name returns "Tanh".
func (TanhOp) Name() string { return "Tanh" }

// Forward computes tanh(x).
func (TanhOp) Forward(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	return tensor.Tanh(x), nil
}

// Backward computes gy * (1 - y²), reusing the recorded output.
func (TanhOp) Backward(_, y, gy *tensor.RawTensor) (*tensor.RawTensor, error) {
	oneMinusY2 := tensor.AddScalar(tensor.Neg(tensor.Pow(y, 2)), 1)
	return tensor.Mul(gy, oneMinusY2), nil
}

// Tanh applies a new TanhOp to x.
func Tanh(x *autodiff.Variable) (*autodiff.Variable, error) {
	return autodiff.Apply(TanhOp{}, x)
}
