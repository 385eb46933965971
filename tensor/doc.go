// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense numeric arrays used by chainrule.
//
// # Overview
//
// A RawTensor is a row-major array of float64, float32 or float16 values.
// This package provides:
//   - Creation: NewRaw, FromSlice, FromSliceAs, Scalar, Full, OnesLike, ZerosLike
//   - Scalar promotion: AsArray turns Go numbers into 0-d arrays
//   - Element-wise math: Add, Sub, Mul, Div, Pow, Exp, Log, Sin, Cos, Tanh, Map
//   - Comparison: AllClose, MaxAbsDiff, Equal
//
// # Basic Usage
//
//	x, err := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{3})
//	if err != nil {
//	    return err
//	}
//	y := tensor.Mul(tensor.Exp(x), x)
//
// Binary operations accept operands of equal shape, or a single-element
// operand broadcast against the other one. Anything else panics.
package tensor
