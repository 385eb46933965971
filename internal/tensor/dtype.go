// Package tensor provides the dense numeric arrays the autodiff engine computes on.
package tensor

// DataType represents runtime type information for arrays.
type DataType int

// Supported data types. All of them are floating point: gradients are only
// meaningful over real numbers.
const (
	Float64 DataType = iota
	Float32
	Float16
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float64:
		return 8
	case Float32:
		return 4
	case Float16:
		return 2
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	case Float16:
		return "float16"
	default:
		return "unknown"
	}
}
