package autodiff

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/chainrule/internal/tensor"
)

// Defaults used by NumericalDiff and CheckGradient.
const (
	DefaultEpsilon   = 1e-4
	DefaultTolerance = 1e-4
)

// GradOption configures NumericalDiff and CheckGradient.
type GradOption func(*gradOptions)

type gradOptions struct {
	eps float64
	tol float64
}

// WithEpsilon sets the finite-difference step.
func WithEpsilon(eps float64) GradOption {
	return func(o *gradOptions) {
		o.eps = eps
	}
}

// WithTolerance sets the absolute tolerance used by CheckGradient.
func WithTolerance(tol float64) GradOption {
	return func(o *gradOptions) {
		o.tol = tol
	}
}

func newGradOptions(opts []GradOption) *gradOptions {
	options := &gradOptions{
		eps: DefaultEpsilon,
		tol: DefaultTolerance,
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// DiffFunc is a function of one Variable, such as ops.Square.
type DiffFunc func(*Variable) (*Variable, error)

// NumericalDiff approximates df/dx by central differences:
//
//	(f(x+eps) - f(x-eps)) / (2*eps)
//
// f is evaluated on fresh root Variables, so x and its graph are untouched.
// The error of the approximation is O(eps²).
func NumericalDiff(f DiffFunc, x *Variable, opts ...GradOption) (*tensor.RawTensor, error) {
	options := newGradOptions(opts)
	if x == nil || x.data == nil {
		return nil, errors.Wrap(ErrNoData, "numerical diff")
	}

	x0, err := NewVariable(tensor.AddScalar(x.data, -options.eps))
	if err != nil {
		return nil, err
	}
	x1, err := NewVariable(tensor.AddScalar(x.data, options.eps))
	if err != nil {
		return nil, err
	}

	y0, err := f(x0)
	if err != nil {
		return nil, errors.WithMessage(err, "numerical diff at x-eps")
	}
	y1, err := f(x1)
	if err != nil {
		return nil, errors.WithMessage(err, "numerical diff at x+eps")
	}
	if y0.data == nil || y1.data == nil {
		return nil, errors.Wrap(ErrNoData, "numerical diff output")
	}

	return tensor.DivScalar(tensor.Sub(y1.data, y0.data), 2*options.eps), nil
}

// CheckGradient compares the analytic gradient of f at x, obtained with
// Backward on a fresh root, against NumericalDiff. It returns an error
// wrapping ErrGradientMismatch when any element differs by more than the
// tolerance.
func CheckGradient(f DiffFunc, x *Variable, opts ...GradOption) error {
	options := newGradOptions(opts)
	if x == nil || x.data == nil {
		return errors.Wrap(ErrNoData, "check gradient")
	}

	root, err := NewVariable(x.data)
	if err != nil {
		return err
	}
	y, err := f(root)
	if err != nil {
		return errors.WithMessage(err, "check gradient forward")
	}
	if err := y.Backward(); err != nil {
		return errors.WithMessage(err, "check gradient backward")
	}
	if root.grad == nil {
		return errors.Errorf("check gradient: no gradient reached the input")
	}

	numeric, err := NumericalDiff(f, x, opts...)
	if err != nil {
		return err
	}

	diff := tensor.MaxAbsDiff(root.grad, numeric)
	klog.V(1).Infof("check gradient: max abs diff %g (tolerance %g)", diff, options.tol)
	if !tensor.AllClose(root.grad, numeric, options.tol) {
		return errors.Wrapf(ErrGradientMismatch, "max abs diff %g exceeds tolerance %g", diff, options.tol)
	}
	return nil
}
