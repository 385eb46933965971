package ops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/chainrule/internal/autodiff"
	"github.com/born-ml/chainrule/internal/tensor"
)

func newVariable(t *testing.T, values ...float64) *autodiff.Variable {
	t.Helper()
	data, err := tensor.FromSlice(values, tensor.Shape{len(values)})
	require.NoError(t, err)
	return autodiff.MustVariable(data)
}

func TestOps_ForwardAndBackward(t *testing.T) {
	tests := []struct {
		name    string
		apply   autodiff.DiffFunc
		inputs  []float64
		forward func(float64) float64
		deriv   func(float64) float64
	}{
		{"Square", Square, []float64{-2, -0.5, 0, 1, 3},
			func(x float64) float64 { return x * x },
			func(x float64) float64 { return 2 * x }},
		{"Exp", Exp, []float64{-2, -0.5, 0, 1, 3},
			math.Exp,
			math.Exp},
		{"Log", Log, []float64{0.25, 0.5, 1, 2, 10},
			math.Log,
			func(x float64) float64 { return 1 / x }},
		{"Sin", Sin, []float64{-2, -0.5, 0, 1, 3},
			math.Sin,
			math.Cos},
		{"Cos", Cos, []float64{-2, -0.5, 0, 1, 3},
			math.Cos,
			func(x float64) float64 { return -math.Sin(x) }},
		{"Tanh", Tanh, []float64{-2, -0.5, 0, 1, 3},
			math.Tanh,
			func(x float64) float64 { return 1 - math.Tanh(x)*math.Tanh(x) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := newVariable(t, tt.inputs...)
			y, err := tt.apply(x)
			require.NoError(t, err)
			require.NoError(t, y.Backward())

			assert.Equal(t, tt.name, y.Creator().Name())
			for i, v := range tt.inputs {
				assert.InDelta(t, tt.forward(v), y.Data().At(i), 1e-12, "forward at %v", v)
				assert.InDelta(t, tt.deriv(v), x.Grad().At(i), 1e-12, "gradient at %v", v)
			}

			require.NoError(t, autodiff.CheckGradient(tt.apply, x))
		})
	}
}

func TestOps_BackwardScalesUpstreamGradient(t *testing.T) {
	x := tensor.Scalar(3)
	gy := tensor.Scalar(0.5)

	gx, err := SquareOp{}.Backward(x, tensor.Scalar(9), gy)
	require.NoError(t, err)
	assert.Equal(t, 3.0, gx.Item())

	y, err := ExpOp{}.Forward(x)
	require.NoError(t, err)
	gx, err = ExpOp{}.Backward(x, y, gy)
	require.NoError(t, err)
	assert.InDelta(t, 0.5*math.Exp(3), gx.Item(), 1e-12)
}

func TestOps_ScalarOutputsAreZeroDimensional(t *testing.T) {
	x := autodiff.MustVariable(tensor.Scalar(2))
	y, err := Square(x)
	require.NoError(t, err)

	assert.Equal(t, 0, y.Data().Shape().Rank())
	assert.Equal(t, 4.0, y.Data().Item())
}

func TestOps_WrappersBuildFreshFunctions(t *testing.T) {
	x := autodiff.MustVariable(tensor.Scalar(1))
	a, err := Exp(x)
	require.NoError(t, err)
	b, err := Exp(x)
	require.NoError(t, err)

	assert.NotSame(t, a.Creator(), b.Creator())
}

func TestOps_LongChain(t *testing.T) {
	// y = tanh(sin(log(exp(square(x))))) = tanh(sin(x²)).
	chain := func(v *autodiff.Variable) (*autodiff.Variable, error) {
		var err error
		for _, op := range []autodiff.DiffFunc{Square, Exp, Log, Sin, Tanh} {
			if v, err = op(v); err != nil {
				return nil, err
			}
		}
		return v, nil
	}

	x0 := 0.7
	x := newVariable(t, x0)
	y, err := chain(x)
	require.NoError(t, err)
	require.NoError(t, y.Backward())

	s := math.Sin(x0 * x0)
	want := (1 - math.Tanh(s)*math.Tanh(s)) * math.Cos(x0*x0) * 2 * x0
	assert.InDelta(t, want, x.Grad().At(0), 1e-9)
	require.NoError(t, autodiff.CheckGradient(chain, x))
}
