// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/chainrule/internal/tensor"
)

// RawTensor is a dense numeric array.
type RawTensor = tensor.RawTensor

// Shape represents array dimensions.
type Shape = tensor.Shape

// DataType represents the element type of an array.
type DataType = tensor.DataType

// Data type constants.
const (
	Float64 DataType = tensor.Float64
	Float32 DataType = tensor.Float32
	Float16 DataType = tensor.Float16
)

// Errors returned by array constructors.
var (
	ErrUnsupportedType = tensor.ErrUnsupportedType
	ErrShapeMismatch   = tensor.ErrShapeMismatch
)

// NewRaw creates a zero-filled array.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// FromSlice creates a float64 array from values.
func FromSlice(values []float64, shape Shape) (*RawTensor, error) {
	return tensor.FromSlice(values, shape)
}

// FromSliceAs creates an array of the given dtype from values.
func FromSliceAs(values []float64, shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.FromSliceAs(values, shape, dtype)
}

// Scalar creates a 0-d float64 array.
func Scalar(v float64) *RawTensor {
	return tensor.Scalar(v)
}

// Full creates an array filled with value.
func Full(shape Shape, dtype DataType, value float64) (*RawTensor, error) {
	return tensor.Full(shape, dtype, value)
}

// OnesLike returns ones shaped like x.
func OnesLike(x *RawTensor) *RawTensor {
	return tensor.OnesLike(x)
}

// ZerosLike returns zeros shaped like x.
func ZerosLike(x *RawTensor) *RawTensor {
	return tensor.ZerosLike(x)
}

// AsArray promotes Go numbers to 0-d arrays and passes arrays through.
func AsArray(v any) (*RawTensor, error) {
	return tensor.AsArray(v)
}

// Element-wise operations.
var (
	Add        = tensor.Add
	Sub        = tensor.Sub
	Mul        = tensor.Mul
	Div        = tensor.Div
	AddScalar  = tensor.AddScalar
	MulScalar  = tensor.MulScalar
	DivScalar  = tensor.DivScalar
	Neg        = tensor.Neg
	Pow        = tensor.Pow
	Exp        = tensor.Exp
	Log        = tensor.Log
	Sin        = tensor.Sin
	Cos        = tensor.Cos
	Tanh       = tensor.Tanh
	Map        = tensor.Map
	AllClose   = tensor.AllClose
	MaxAbsDiff = tensor.MaxAbsDiff
	Equal      = tensor.Equal
)
