package ops

import (
	"github.com/born-ml/chainrule/internal/autodiff"
	"github.com/born-ml/chainrule/internal/tensor"
)

// LogOp represents element-wise natural logarithm: y = log(x).
//
// Backward:
//
//	∂L/∂input = ∂L/∂output * (1 / input)
//
// Inputs are assumed positive; other values propagate NaN/Inf.
type LogOp struct{}

// Name returns "Log".
func (LogOp) Name() string { return "Log" }

// Forward computes log(x).
func (LogOp) Forward(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	return tensor.Log(x), nil
}

// Backward computes gy / x.
func (LogOp) Backward(x, _, gy *tensor.RawTensor) (*tensor.RawTensor, error) {
	return tensor.Div(gy, x), nil
}

// Log applies a new LogOp to x.
func Log(x *autodiff.Variable) (*autodiff.Variable, error) {
	return autodiff.Apply(LogOp{}, x)
}
