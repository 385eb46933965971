// Package ops defines the differentiable operations of the autodiff engine.
//
// Each operation is a stateless autodiff.Rule paired with a convenience
// wrapper that builds a fresh Function and applies it:
//   - SquareOp: y = x² (dy/dx = 2x)
//   - ExpOp: y = exp(x) (dy/dx = exp(x))
//   - LogOp: y = log(x) (dy/dx = 1/x)
//   - SinOp: y = sin(x) (dy/dx = cos(x))
//   - CosOp: y = cos(x) (dy/dx = -sin(x))
//   - TanhOp: y = tanh(x) (dy/dx = 1 - tanh²(x))
package ops

import "github.com/born-ml/chainrule/internal/autodiff"

var (
	_ autodiff.Rule = SquareOp{}
	_ autodiff.Rule = ExpOp{}
	_ autodiff.Rule = LogOp{}
	_ autodiff.Rule = SinOp{}
	_ autodiff.Rule = CosOp{}
	_ autodiff.Rule = TanhOp{}
)
