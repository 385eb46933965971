package autodiff

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/chainrule/internal/tensor"
)

// Backward computes gradients for every Variable on the chain from v back to
// its root.
//
// If v has no gradient yet it is seeded with ones shaped like its data
// (dv/dv = 1). The creators are then visited through a stack: for each
// Function f, f.Input().grad = f.Backward(f.Output().grad), and the input's
// own creator is pushed. Each Function has a single input, so the stack never
// holds more than one entry and no gradient accumulation is needed.
func (v *Variable) Backward() error {
	if v.data == nil {
		return errors.Wrap(ErrNoData, "backward")
	}
	if v.grad == nil {
		v.grad = tensor.OnesLike(v.data)
	}

	var funcs []*Function
	if v.creator != nil {
		funcs = append(funcs, v.creator)
	}

	steps := 0
	for len(funcs) > 0 {
		f := funcs[len(funcs)-1]
		funcs = funcs[:len(funcs)-1]

		gx, err := f.Backward(f.outputGrad())
		if err != nil {
			return errors.WithMessagef(err, "backward through %s", f.Name())
		}
		x := f.input
		x.grad = gx
		steps++
		klog.V(2).Infof("backward: %s grad %s -> %s", f.Name(), f.output.grad.Shape(), gx.Shape())

		if x.creator != nil {
			funcs = append(funcs, x.creator)
		}
	}

	klog.V(1).Infof("backward: propagated through %d functions", steps)
	return nil
}
