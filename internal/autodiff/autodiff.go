// Package autodiff implements reverse-mode automatic differentiation over a
// linear chain of single-input, single-output functions.
//
// Architecture:
//   - Variable: holds a value, its gradient and the Function that created it
//   - Rule: the math of one operation (forward value, local gradient)
//   - Function: single-use graph edge binding a Rule to its input and output
//   - Backward: walks creators from the output back to the root (chain rule)
//
// Usage:
//
//	x, _ := autodiff.NewVariable(tensor.Scalar(0.5))
//	a, _ := ops.Square(x)
//	b, _ := ops.Exp(a)
//	y, _ := ops.Square(b)
//	if err := y.Backward(); err != nil { ... }
//	fmt.Println(x.Grad()) // dy/dx
//
// Graphs are not reusable across backward passes and gradients are not
// accumulated across multiple consumers of one Variable.
package autodiff
