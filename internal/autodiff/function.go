package autodiff

import (
	"github.com/pkg/errors"

	"github.com/born-ml/chainrule/internal/tensor"
)

// Rule is the math of a differentiable operation, expressed over raw arrays.
type Rule interface {
	// Name identifies the operation in logs and errors.
	Name() string

	// Forward computes y = f(x).
	Forward(x *tensor.RawTensor) (*tensor.RawTensor, error)

	// Backward computes dL/dx given the recorded input x, the recorded
	// output y and the upstream gradient gy = dL/dy.
	Backward(x, y, gy *tensor.RawTensor) (*tensor.RawTensor, error)
}

// Function is one application of a Rule in the graph. It records the input
// and output Variables it was called with, and is single-use: a second Call
// fails with ErrFunctionReused.
//
// The zero Function has no Rule; its Forward and Backward return ErrNotImplemented.
type Function struct {
	rule   Rule
	input  *Variable
	output *Variable
}

// NewFunction binds rule to a fresh, not yet called, Function.
func NewFunction(rule Rule) *Function {
	return &Function{rule: rule}
}

// Name returns the rule's name, or "Function" when no rule is bound.
func (f *Function) Name() string {
	if f.rule == nil {
		return "Function"
	}
	return f.rule.Name()
}

// Rule returns the bound rule.
func (f *Function) Rule() Rule {
	return f.rule
}

// Input returns the Variable this Function was called with.
func (f *Function) Input() *Variable {
	return f.input
}

// Output returns the Variable this Function produced.
func (f *Function) Output() *Variable {
	return f.output
}

// Forward evaluates the rule on a raw array.
func (f *Function) Forward(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	if f.rule == nil {
		return nil, errors.Wrapf(ErrNotImplemented, "%s.Forward", f.Name())
	}
	return f.rule.Forward(x)
}

// Backward maps the gradient of the output to the gradient of the input,
// using the input and output recorded by Call.
func (f *Function) Backward(gy *tensor.RawTensor) (*tensor.RawTensor, error) {
	if f.rule == nil {
		return nil, errors.Wrapf(ErrNotImplemented, "%s.Backward", f.Name())
	}
	if f.input == nil || f.output == nil {
		return nil, errors.Errorf("%s.Backward: function was never called", f.Name())
	}
	return f.rule.Backward(f.input.data, f.output.data, gy)
}

// outputGrad returns the gradient of the recorded output, if any.
func (f *Function) outputGrad() *tensor.RawTensor {
	if f.output == nil {
		return nil
	}
	return f.output.grad
}

// Call applies the Function to input and returns the output Variable, whose
// creator is f.
func (f *Function) Call(input *Variable) (*Variable, error) {
	if f.output != nil {
		return nil, errors.Wrapf(ErrFunctionReused, "%s", f.Name())
	}
	if input == nil || input.data == nil {
		return nil, errors.Wrapf(ErrNoData, "%s input", f.Name())
	}

	y, err := f.Forward(input.data)
	if err != nil {
		return nil, err
	}
	data, err := tensor.AsArray(y)
	if err != nil {
		return nil, errors.Wrapf(err, "%s output", f.Name())
	}
	output, err := NewVariable(data)
	if err != nil {
		return nil, errors.Wrapf(err, "%s output", f.Name())
	}

	output.SetCreator(f)
	f.input = input
	f.output = output
	return output, nil
}

// Apply builds a Function for rule and calls it on input.
func Apply(rule Rule, input *Variable) (*Variable, error) {
	return NewFunction(rule).Call(input)
}
