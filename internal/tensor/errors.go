package tensor

import "github.com/pkg/errors"

// Common errors.
var (
	ErrUnsupportedType = errors.New("unsupported type")
	ErrShapeMismatch   = errors.New("shape mismatch")
)
