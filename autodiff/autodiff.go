// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// Applying an operation to a Variable records the Function that produced the
// result. Backward on the final Variable walks those Functions back to the
// root and fills in every gradient on the way.
//
// Example:
//
//	import (
//	    "github.com/born-ml/chainrule/autodiff"
//	    "github.com/born-ml/chainrule/tensor"
//	)
//
//	func main() {
//	    x, _ := autodiff.NewVariable(tensor.Scalar(0.5))
//	    a, _ := autodiff.Square(x)
//	    b, _ := autodiff.Exp(a)
//	    y, _ := autodiff.Square(b)
//
//	    _ = y.Backward()
//	    fmt.Println(x.Grad().Item()) // ≈ 3.2974
//	}
package autodiff

import (
	"github.com/born-ml/chainrule/internal/autodiff"
	"github.com/born-ml/chainrule/internal/autodiff/ops"
	"github.com/born-ml/chainrule/internal/tensor"
)

// Variable is a node of the computation graph.
type Variable = autodiff.Variable

// Function is a single-use application of a Rule.
type Function = autodiff.Function

// Rule is the forward/backward math of one operation.
type Rule = autodiff.Rule

// DiffFunc is a function of one Variable.
type DiffFunc = autodiff.DiffFunc

// GradOption configures NumericalDiff and CheckGradient.
type GradOption = autodiff.GradOption

// Errors.
var (
	ErrUnsupportedType  = autodiff.ErrUnsupportedType
	ErrNotImplemented   = autodiff.ErrNotImplemented
	ErrFunctionReused   = autodiff.ErrFunctionReused
	ErrNoData           = autodiff.ErrNoData
	ErrGradientMismatch = autodiff.ErrGradientMismatch
)

// Defaults for gradient checking.
const (
	DefaultEpsilon   = autodiff.DefaultEpsilon
	DefaultTolerance = autodiff.DefaultTolerance
)

// NewVariable wraps a *tensor.RawTensor (or nil) in a root Variable.
// Plain Go numbers are rejected with ErrUnsupportedType.
func NewVariable(data any) (*Variable, error) {
	return autodiff.NewVariable(data)
}

// MustVariable is like NewVariable but panics on error.
func MustVariable(data any) *Variable {
	return autodiff.MustVariable(data)
}

// NewFunction binds rule to a new Function.
func NewFunction(rule Rule) *Function {
	return autodiff.NewFunction(rule)
}

// Apply calls a new Function for rule on x.
func Apply(rule Rule, x *Variable) (*Variable, error) {
	return autodiff.Apply(rule, x)
}

// Square computes x².
func Square(x *Variable) (*Variable, error) { return ops.Square(x) }

// Exp computes e^x.
func Exp(x *Variable) (*Variable, error) { return ops.Exp(x) }

// Log computes the natural logarithm of x.
func Log(x *Variable) (*Variable, error) { return ops.Log(x) }

// Sin computes sin(x).
func Sin(x *Variable) (*Variable, error) { return ops.Sin(x) }

// Cos computes cos(x).
func Cos(x *Variable) (*Variable, error) { return ops.Cos(x) }

// Tanh computes tanh(x).
func Tanh(x *Variable) (*Variable, error) { return ops.Tanh(x) }

// NumericalDiff approximates df/dx by central differences.
func NumericalDiff(f DiffFunc, x *Variable, opts ...GradOption) (*tensor.RawTensor, error) {
	return autodiff.NumericalDiff(f, x, opts...)
}

// CheckGradient compares the analytic gradient of f with NumericalDiff.
func CheckGradient(f DiffFunc, x *Variable, opts ...GradOption) error {
	return autodiff.CheckGradient(f, x, opts...)
}

// WithEpsilon sets the finite-difference step.
func WithEpsilon(eps float64) GradOption {
	return autodiff.WithEpsilon(eps)
}

// WithTolerance sets the gradient check tolerance.
func WithTolerance(tol float64) GradOption {
	return autodiff.WithTolerance(tol)
}
