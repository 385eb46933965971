package tensor

import (
	"math"

	"github.com/gomlx/exceptions"
)

// Elementwise operations compute in float64 and round the result to the
// output dtype. They panic on nil inputs and incompatible shapes: both are
// programming errors, not runtime conditions.

// Map applies fn to every element of x, returning a new array of the same
// shape and dtype.
func Map(x *RawTensor, fn func(float64) float64) *RawTensor {
	return unary("Map", x, fn)
}

func unary(name string, x *RawTensor, fn func(float64) float64) *RawTensor {
	if x == nil {
		exceptions.Panicf("%s: input tensor is nil", name)
	}
	result := ZerosLike(x)
	for i := 0; i < x.NumElements(); i++ {
		result.set(i, fn(x.At(i)))
	}
	return result
}

// binary applies fn pairwise. Operands must have equal shapes, or one of them
// must hold a single element, which is then broadcast.
func binary(name string, a, b *RawTensor, fn func(x, y float64) float64) *RawTensor {
	if a == nil || b == nil {
		exceptions.Panicf("%s: input tensors cannot be nil", name)
	}

	out := a
	switch {
	case a.shape.Equal(b.shape):
	case b.NumElements() == 1:
	case a.NumElements() == 1:
		out = b
	default:
		exceptions.Panicf("%s: %v: %s vs %s", name, ErrShapeMismatch, a.shape, b.shape)
	}

	result, err := NewRaw(out.shape, promote(a.dtype, b.dtype))
	if err != nil {
		exceptions.Panicf("%s: %v", name, err)
	}
	na, nb := a.NumElements(), b.NumElements()
	for i := 0; i < result.NumElements(); i++ {
		result.set(i, fn(a.At(i%na), b.At(i%nb)))
	}
	return result
}

// promote picks the wider of two dtypes.
func promote(a, b DataType) DataType {
	if a < b {
		return a
	}
	return b
}

// Add computes a + b element-wise.
func Add(a, b *RawTensor) *RawTensor {
	return binary("Add", a, b, func(x, y float64) float64 { return x + y })
}

// Sub computes a - b element-wise.
func Sub(a, b *RawTensor) *RawTensor {
	return binary("Sub", a, b, func(x, y float64) float64 { return x - y })
}

// Mul computes a * b element-wise.
func Mul(a, b *RawTensor) *RawTensor {
	return binary("Mul", a, b, func(x, y float64) float64 { return x * y })
}

// Div computes a / b element-wise.
func Div(a, b *RawTensor) *RawTensor {
	return binary("Div", a, b, func(x, y float64) float64 { return x / y })
}

// AddScalar computes x + s.
func AddScalar(x *RawTensor, s float64) *RawTensor {
	return unary("AddScalar", x, func(v float64) float64 { return v + s })
}

// MulScalar computes x * s.
func MulScalar(x *RawTensor, s float64) *RawTensor {
	return unary("MulScalar", x, func(v float64) float64 { return v * s })
}

// DivScalar computes x / s.
func DivScalar(x *RawTensor, s float64) *RawTensor {
	return unary("DivScalar", x, func(v float64) float64 { return v / s })
}

// Neg computes -x.
func Neg(x *RawTensor) *RawTensor {
	return unary("Neg", x, func(v float64) float64 { return -v })
}

// Pow raises every element to the power p.
func Pow(x *RawTensor, p float64) *RawTensor {
	return unary("Pow", x, func(v float64) float64 { return math.Pow(v, p) })
}

// Exp computes e^x element-wise.
func Exp(x *RawTensor) *RawTensor {
	return unary("Exp", x, math.Exp)
}

// Log computes the natural logarithm element-wise. Non-positive inputs yield
// NaN or -Inf, as with math.Log.
func Log(x *RawTensor) *RawTensor {
	return unary("Log", x, math.Log)
}

// Sin computes sin(x) element-wise.
func Sin(x *RawTensor) *RawTensor {
	return unary("Sin", x, math.Sin)
}

// Cos computes cos(x) element-wise.
func Cos(x *RawTensor) *RawTensor {
	return unary("Cos", x, math.Cos)
}

// Tanh computes the hyperbolic tangent element-wise.
func Tanh(x *RawTensor) *RawTensor {
	return unary("Tanh", x, math.Tanh)
}

// MaxAbsDiff returns max |a[i] - b[i]|. Shapes must match exactly.
func MaxAbsDiff(a, b *RawTensor) float64 {
	if a == nil || b == nil {
		exceptions.Panicf("MaxAbsDiff: input tensors cannot be nil")
	}
	if !a.shape.Equal(b.shape) {
		exceptions.Panicf("MaxAbsDiff: %v: %s vs %s", ErrShapeMismatch, a.shape, b.shape)
	}
	var worst float64
	for i := 0; i < a.NumElements(); i++ {
		d := math.Abs(a.At(i) - b.At(i))
		if d > worst || math.IsNaN(d) {
			worst = d
		}
	}
	return worst
}

// AllClose reports whether a and b have the same shape and every pair of
// elements differs by at most atol.
func AllClose(a, b *RawTensor, atol float64) bool {
	if a == nil || b == nil || !a.shape.Equal(b.shape) {
		return false
	}
	return MaxAbsDiff(a, b) <= atol
}

// Equal reports whether a and b have the same shape, dtype and values.
func Equal(a, b *RawTensor) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.dtype != b.dtype || !a.shape.Equal(b.shape) {
		return false
	}
	for i := 0; i < a.NumElements(); i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}
	return true
}
