package autodiff

import "github.com/pkg/errors"

// Common errors.
var (
	// ErrUnsupportedType is returned when a Variable is built from something
	// other than a *tensor.RawTensor or nil.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrNotImplemented is returned by a Function that has no Rule bound.
	ErrNotImplemented = errors.New("not implemented")

	ErrFunctionReused   = errors.New("function already called")
	ErrNoData           = errors.New("variable has no data")
	ErrGradientMismatch = errors.New("analytic and numerical gradients differ")
)
