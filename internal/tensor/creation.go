package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// FromSlice creates a float64 array from a Go slice.
// The slice is copied into the array's memory.
//
// Example:
//
//	x, err := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{3})
func FromSlice(values []float64, shape Shape) (*RawTensor, error) {
	return FromSliceAs(values, shape, Float64)
}

// FromSliceAs creates an array of the given dtype from float64 values,
// rounding each value to the dtype's precision.
func FromSliceAs(values []float64, shape Shape, dtype DataType) (*RawTensor, error) {
	if shape.NumElements() != len(values) {
		return nil, fmt.Errorf("shape %s requires %d elements, but got %d", shape, shape.NumElements(), len(values))
	}
	raw, err := NewRaw(shape, dtype)
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		raw.set(i, v)
	}
	return raw, nil
}

// Scalar creates a 0-d float64 array holding v.
func Scalar(v float64) *RawTensor {
	raw, err := NewRaw(Shape{}, Float64)
	if err != nil {
		panic(err) // Empty shape is always valid
	}
	raw.set(0, v)
	return raw
}

// Full creates an array filled with a specific value.
func Full(shape Shape, dtype DataType, value float64) (*RawTensor, error) {
	raw, err := NewRaw(shape, dtype)
	if err != nil {
		return nil, err
	}
	for i := 0; i < raw.NumElements(); i++ {
		raw.set(i, value)
	}
	return raw, nil
}

// OnesLike returns an array of ones with the shape and dtype of x.
func OnesLike(x *RawTensor) *RawTensor {
	raw, err := Full(x.shape, x.dtype, 1)
	if err != nil {
		panic(err) // x's shape is already valid
	}
	return raw
}

// ZerosLike returns an array of zeros with the shape and dtype of x.
func ZerosLike(x *RawTensor) *RawTensor {
	raw, err := NewRaw(x.shape, x.dtype)
	if err != nil {
		panic(err) // x's shape is already valid
	}
	return raw
}

// AsArray normalizes v into an array: a *RawTensor is returned unchanged,
// Go numeric scalars are promoted to 0-d float64 arrays, and nil stays nil.
// Any other type yields ErrUnsupportedType.
func AsArray(v any) (*RawTensor, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case *RawTensor:
		return x, nil
	case float64:
		return Scalar(x), nil
	case float32:
		return Scalar(float64(x)), nil
	case int:
		return Scalar(float64(x)), nil
	case int32:
		return Scalar(float64(x)), nil
	case int64:
		return Scalar(float64(x)), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedType, "%T is not supported", v)
	}
}
