// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/chainrule/tensor"
)

// TestRawTensorAPI verifies the RawTensor alias exposes the expected API.
func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32)
	require.NoError(t, err)

	assert.True(t, raw.Shape().Equal(tensor.Shape{2, 3}))
	assert.Equal(t, tensor.Float32, raw.DType())
	assert.Equal(t, 6, raw.NumElements())
	assert.Equal(t, 24, raw.ByteSize())
}

func TestPublicOps(t *testing.T) {
	x, err := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2})
	require.NoError(t, err)

	y := tensor.Mul(x, tensor.Scalar(3))
	assert.Equal(t, []float64{3, 6}, y.Values())
	assert.True(t, tensor.AllClose(tensor.Exp(tensor.Scalar(0)), tensor.OnesLike(tensor.Scalar(5)), 0))

	_, err = tensor.AsArray(struct{}{})
	require.ErrorIs(t, err, tensor.ErrUnsupportedType)
}
