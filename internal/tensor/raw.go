package tensor

import (
	"fmt"
	"unsafe"

	"github.com/gomlx/exceptions"
	"github.com/x448/float16"
)

// RawTensor is a dense, row-major array of floating point values.
// Values live in a byte buffer interpreted according to dtype.
type RawTensor struct {
	data   []byte
	shape  Shape
	stride []int
	dtype  DataType
}

// NewRaw creates a new RawTensor with the given shape and type.
// Memory is allocated and zero-initialized.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	return &RawTensor{
		data:   make([]byte, shape.NumElements()*dtype.Size()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}, nil
}

// Shape returns the array's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the array's memory strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the array's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the total memory size in bytes.
func (r *RawTensor) ByteSize() int {
	return len(r.data)
}

// Data returns the raw byte slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []byte {
	return r.data
}

// AsFloat64 interprets the data as []float64.
// Panics if the array's dtype is not Float64.
func (r *RawTensor) AsFloat64() []float64 {
	if r.dtype != Float64 {
		exceptions.Panicf("tensor dtype is %s, not float64", r.dtype)
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float64)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsFloat32 interprets the data as []float32.
// Panics if the array's dtype is not Float32.
func (r *RawTensor) AsFloat32() []float32 {
	if r.dtype != Float32 {
		exceptions.Panicf("tensor dtype is %s, not float32", r.dtype)
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float32)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsFloat16 interprets the data as []float16.Float16.
// Panics if the array's dtype is not Float16.
func (r *RawTensor) AsFloat16() []float16.Float16 {
	if r.dtype != Float16 {
		exceptions.Panicf("tensor dtype is %s, not float16", r.dtype)
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float16.Float16)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// At returns the i-th element (flat, row-major) widened to float64.
func (r *RawTensor) At(i int) float64 {
	switch r.dtype {
	case Float64:
		return r.AsFloat64()[i]
	case Float32:
		return float64(r.AsFloat32()[i])
	case Float16:
		return float64(r.AsFloat16()[i].Float32())
	default:
		exceptions.Panicf("At: unsupported dtype %s", r.dtype)
		return 0
	}
}

// set stores v at flat index i, rounding to the array's precision.
func (r *RawTensor) set(i int, v float64) {
	switch r.dtype {
	case Float64:
		r.AsFloat64()[i] = v
	case Float32:
		r.AsFloat32()[i] = float32(v)
	case Float16:
		r.AsFloat16()[i] = float16.Fromfloat32(float32(v))
	default:
		exceptions.Panicf("set: unsupported dtype %s", r.dtype)
	}
}

// Values returns a float64 copy of all elements in row-major order.
func (r *RawTensor) Values() []float64 {
	out := make([]float64, r.NumElements())
	for i := range out {
		out[i] = r.At(i)
	}
	return out
}

// Item returns the single value of a size-1 array.
// Panics if the array holds more than one element.
func (r *RawTensor) Item() float64 {
	if r.NumElements() != 1 {
		exceptions.Panicf("Item: array of shape %s has %d elements, want 1", r.shape, r.NumElements())
	}
	return r.At(0)
}

// Clone returns a deep copy.
func (r *RawTensor) Clone() *RawTensor {
	data := make([]byte, len(r.data))
	copy(data, r.data)
	return &RawTensor{
		data:   data,
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
		dtype:  r.dtype,
	}
}

// AsType returns a copy of the array converted to dtype.
func (r *RawTensor) AsType(dtype DataType) *RawTensor {
	if dtype == r.dtype {
		return r.Clone()
	}
	out, err := NewRaw(r.shape, dtype)
	if err != nil {
		panic(err) // shape was validated when r was created
	}
	for i := 0; i < r.NumElements(); i++ {
		out.set(i, r.At(i))
	}
	return out
}

// String returns a short description including the values.
func (r *RawTensor) String() string {
	if r.shape.Rank() == 0 {
		return fmt.Sprintf("array(%g, dtype=%s)", r.At(0), r.dtype)
	}
	return fmt.Sprintf("array(%v, shape=%s, dtype=%s)", r.Values(), r.shape, r.dtype)
}
