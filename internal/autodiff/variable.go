package autodiff

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/born-ml/chainrule/internal/tensor"
)

// Variable is a node of the computation graph.
//
// Data is fixed at construction. Grad is filled in by Backward and creator is
// set by the Function that produced the Variable; it stays nil for roots.
type Variable struct {
	data    *tensor.RawTensor
	grad    *tensor.RawTensor
	creator *Function
}

// NewVariable wraps data in a new root Variable.
//
// data must be a *tensor.RawTensor or nil (no value yet). Plain Go numbers
// are rejected: use tensor.Scalar or tensor.AsArray to promote them first.
func NewVariable(data any) (*Variable, error) {
	switch d := data.(type) {
	case nil:
		return &Variable{}, nil
	case *tensor.RawTensor:
		return &Variable{data: d}, nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedType, "%T is not supported", data)
	}
}

// MustVariable is like NewVariable but panics on error.
func MustVariable(data any) *Variable {
	v, err := NewVariable(data)
	if err != nil {
		panic(err)
	}
	return v
}

// Data returns the value held by the Variable, or nil if it has none.
func (v *Variable) Data() *tensor.RawTensor {
	return v.data
}

// Grad returns the gradient computed by the last Backward, or nil.
func (v *Variable) Grad() *tensor.RawTensor {
	return v.grad
}

// SetGrad overrides the gradient. Setting it before Backward replaces the
// default seed of ones.
func (v *Variable) SetGrad(grad *tensor.RawTensor) {
	v.grad = grad
}

// ClearGrad drops the gradient.
func (v *Variable) ClearGrad() {
	v.grad = nil
}

// Creator returns the Function that produced this Variable, or nil for roots.
func (v *Variable) Creator() *Function {
	return v.creator
}

// SetCreator records the Function that produced this Variable.
func (v *Variable) SetCreator(f *Function) {
	v.creator = f
}

// Shape returns the shape of the data, or nil when there is no data.
func (v *Variable) Shape() tensor.Shape {
	if v.data == nil {
		return nil
	}
	return v.data.Shape()
}

func (v *Variable) String() string {
	if v.data == nil {
		return "variable(None)"
	}
	return fmt.Sprintf("variable(%s)", v.data)
}
