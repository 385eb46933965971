// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-descent optimizers for chainrule.
//
// # Overview
//
// This package contains:
//   - SGD: gradient descent with optional momentum
//   - Minimize: forward, backward and step loop over a function of one Variable
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	x := autodiff.MustVariable(tensor.Scalar(2))
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.1, Momentum: 0.9})
//	best, err := optim.Minimize(autodiff.Square, x, sgd, 100)
//
// Each step returns a fresh root Variable: graphs are rebuilt every iteration.
package optim
