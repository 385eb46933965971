package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSlice(t *testing.T) {
	raw, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	assert.Equal(t, Float64, raw.DType())
	assert.True(t, Shape{2, 3}.Equal(raw.Shape()))
	assert.Equal(t, []int{3, 1}, raw.Strides())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, raw.AsFloat64())
}

func TestFromSliceCopiesInput(t *testing.T) {
	values := []float64{1, 2}
	raw, err := FromSlice(values, Shape{2})
	require.NoError(t, err)

	values[0] = 100
	assert.Equal(t, 1.0, raw.At(0))
}

func TestFromSliceWrongLength(t *testing.T) {
	_, err := FromSlice([]float64{1, 2, 3}, Shape{2, 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires 4 elements")
}

func TestScalarIsZeroDimensional(t *testing.T) {
	s := Scalar(2)
	assert.Equal(t, 0, s.Shape().Rank())
	assert.Equal(t, 1, s.NumElements())
	assert.Equal(t, 2.0, s.Item())
}

func TestFullOnesZerosLike(t *testing.T) {
	full, err := Full(Shape{3}, Float32, 2.5)
	require.NoError(t, err)
	assert.Equal(t, []float32{2.5, 2.5, 2.5}, full.AsFloat32())

	ones := OnesLike(full)
	assert.Equal(t, Float32, ones.DType())
	assert.Equal(t, []float32{1, 1, 1}, ones.AsFloat32())

	zeros := ZerosLike(full)
	assert.Equal(t, []float32{0, 0, 0}, zeros.AsFloat32())

	onesScalar := OnesLike(Scalar(7))
	assert.Equal(t, 0, onesScalar.Shape().Rank())
	assert.Equal(t, 1.0, onesScalar.Item())
}

func TestAsArray(t *testing.T) {
	raw := Scalar(1)
	got, err := AsArray(raw)
	require.NoError(t, err)
	assert.Same(t, raw, got)

	for _, v := range []any{2.0, float32(2), 2, int32(2), int64(2)} {
		got, err := AsArray(v)
		require.NoError(t, err, "%T", v)
		assert.Equal(t, 0, got.Shape().Rank())
		assert.Equal(t, 2.0, got.Item())
	}

	got, err = AsArray(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = AsArray("two")
	require.ErrorIs(t, err, ErrUnsupportedType)
	assert.Contains(t, err.Error(), "string is not supported")

	_, err = AsArray([]float64{1})
	require.ErrorIs(t, err, ErrUnsupportedType)
}
