package optim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/chainrule/internal/autodiff"
	"github.com/born-ml/chainrule/internal/autodiff/ops"
	"github.com/born-ml/chainrule/internal/optim"
	"github.com/born-ml/chainrule/internal/tensor"
)

// stepOnce runs forward, backward and one optimizer step on x.
func stepOnce(t *testing.T, f autodiff.DiffFunc, x *autodiff.Variable, opt optim.Optimizer) *autodiff.Variable {
	t.Helper()
	y, err := f(x)
	require.NoError(t, err)
	require.NoError(t, y.Backward())
	next, err := opt.Step(x)
	require.NoError(t, err)
	return next
}

// TestSGD_SimpleUpdate tests SGD without momentum on f(x) = x².
func TestSGD_SimpleUpdate(t *testing.T) {
	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.1})
	x := autodiff.MustVariable(tensor.Scalar(2))

	next := stepOnce(t, ops.Square, x, sgd)

	// x_new = 2 - 0.1 * 2*2 = 1.6
	assert.InDelta(t, 1.6, next.Data().Item(), 1e-12)
	assert.Nil(t, next.Creator())
	assert.Nil(t, next.Grad())
	assert.Equal(t, 2.0, x.Data().Item())
}

// TestSGD_Momentum tests the velocity accumulation.
func TestSGD_Momentum(t *testing.T) {
	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.1, Momentum: 0.9})
	x := autodiff.MustVariable(tensor.Scalar(2))

	// Step 1: v = 4, x = 2 - 0.4 = 1.6
	x = stepOnce(t, ops.Square, x, sgd)
	assert.InDelta(t, 1.6, x.Data().Item(), 1e-12)

	// Step 2: grad = 3.2, v = 0.9*4 + 3.2 = 6.8, x = 1.6 - 0.68 = 0.92
	x = stepOnce(t, ops.Square, x, sgd)
	assert.InDelta(t, 0.92, x.Data().Item(), 1e-12)

	// After Reset the next step behaves like plain SGD: 0.92 - 0.1*1.84
	sgd.Reset()
	x = stepOnce(t, ops.Square, x, sgd)
	assert.InDelta(t, 0.736, x.Data().Item(), 1e-12)
}

func TestSGD_DefaultsAndLR(t *testing.T) {
	sgd := optim.NewSGD(optim.SGDConfig{})
	assert.Equal(t, 0.01, sgd.GetLR())

	sgd.SetLR(0.5)
	assert.Equal(t, 0.5, sgd.GetLR())
}

func TestSGD_StepErrors(t *testing.T) {
	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.1})

	_, err := sgd.Step(autodiff.MustVariable(tensor.Scalar(1)))
	require.ErrorIs(t, err, optim.ErrNoGradient)

	_, err = sgd.Step(autodiff.MustVariable(nil))
	require.ErrorIs(t, err, autodiff.ErrNoData)
}

func TestMinimize_Square(t *testing.T) {
	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.1})
	x := autodiff.MustVariable(tensor.Scalar(2))

	got, err := optim.Minimize(ops.Square, x, sgd, 50)
	require.NoError(t, err)

	// Each step multiplies x by (1 - 2*lr) = 0.8.
	assert.InDelta(t, 2*math.Pow(0.8, 50), got.Data().Item(), 1e-12)
}

func TestMinimize_Cos(t *testing.T) {
	// cos has a minimum at pi.
	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.5, Momentum: 0.5})
	x := autodiff.MustVariable(tensor.Scalar(2.5))

	got, err := optim.Minimize(ops.Cos, x, sgd, 200)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, got.Data().Item(), 1e-6)
}

func TestMinimize_PropagatesErrors(t *testing.T) {
	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.1})
	_, err := optim.Minimize(ops.Square, autodiff.MustVariable(nil), sgd, 3)
	require.ErrorIs(t, err, autodiff.ErrNoData)
	assert.Contains(t, err.Error(), "iteration 0 forward")
}

